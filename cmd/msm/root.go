package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmsm/logging"
	"github.com/katalvlaran/lvmsm/msm"
)

// app carries the state initialized by the root command.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        settings
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper(), logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "msm",
		Short: "Fit Markov state models to discrete trajectories",
		Long: "msm estimates a Markov state model from label trajectories stored as YAML\n" +
			"(sequences: [[...], ...]; null marks a missing frame) and reports its\n" +
			"summary, samples from it, or scores held-out data.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.Int("lag", msm.DefaultLagTime, "lag time in frames")
	pf.String("method", "mle", "estimator (mle, transpose, none)")
	pf.Float64("cutoff", msm.DefaultErgodicCutoff, "ergodic cutoff, values below 1 disable trimming")
	pf.Float64("prior", msm.DefaultPriorCounts, "prior pseudo-counts")
	pf.Int("timescales", msm.DefaultTimescales, "number of timescales, 0 for all")

	for key, flag := range map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
		"lag":        "lag",
		"method":     "method",
		"cutoff":     "cutoff",
		"prior":      "prior",
		"timescales": "timescales",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	cmd.AddCommand(newFitCmd(a), newSampleCmd(a), newScoreCmd(a))

	return cmd
}

// setup merges configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := loadSettings(a.v, a.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger

	return nil
}

// fit reads path and fits a model with the merged settings.
func (a *app) fit(path string) (*msm.Model[string], error) {
	seqs, err := readSequences(path)
	if err != nil {
		return nil, err
	}
	opts := append(a.cfg.modelOptions(), msm.WithLogger(a.logger))
	model, err := msm.New[string](opts...)
	if err != nil {
		return nil, err
	}
	if _, err = model.Fit(seqs); err != nil {
		return nil, fmt.Errorf("fit %q: %w", path, err)
	}
	a.logger.Debug("model fitted",
		zap.String("input", path),
		zap.Int("sequences", len(seqs)),
		zap.Int("states", model.NStates()),
	)

	return model, nil
}
