package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmsm/labels"
	"github.com/katalvlaran/lvmsm/msm"
	"github.com/katalvlaran/lvmsm/scoring"
)

func newFitCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a model and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model, err := a.fit(input)
			if err != nil {
				return err
			}

			return model.Summary(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "YAML file with training sequences")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func newSampleCmd(a *app) *cobra.Command {
	var (
		input string
		steps int
		seed  int64
		start string
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Fit a model and print a sampled trajectory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model, err := a.fit(input)
			if err != nil {
				return err
			}
			var from msm.Start[string]
			if cmd.Flags().Changed("start") {
				from = msm.FromLabel(start)
			}
			traj, err := model.Sample(from, steps, seed)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(traj, " "))

			return err
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "YAML file with training sequences")
	f.IntVarP(&steps, "steps", "n", 100, "trajectory length")
	f.Int64Var(&seed, "seed", 0, "random seed, 0 for the fixed default")
	f.StringVar(&start, "start", "", "initial label (default: draw from populations)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func newScoreCmd(a *app) *cobra.Command {
	var (
		input, test string
		trajectory  bool
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Fit a model and print the log-likelihood of held-out sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model, err := a.fit(input)
			if err != nil {
				return err
			}
			held, err := readSequences(test)
			if err != nil {
				return err
			}
			var ll float64
			if trajectory {
				ll, err = trajectoryLL(model, held)
			} else {
				ll, err = model.ScoreLL(held)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", ll)

			return err
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "YAML file with training sequences")
	f.StringVarP(&test, "test", "t", "", "YAML file with held-out sequences")
	f.BoolVar(&trajectory, "trajectory", false, "score full trajectories with occupancy correction (unmapped frames clipped)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("test")

	return cmd
}

// trajectoryLL clips held to the model's states and scores the pieces with
// scoring.LogLikelihood.
func trajectoryLL(model *msm.Model[string], held [][]string) (float64, error) {
	tr, err := model.Transform(held, labels.Clip)
	if err != nil {
		return 0, err
	}
	t, err := model.TransitionMatrix()
	if err != nil {
		return 0, err
	}

	return scoring.LogLikelihood(tr.Ints, t)
}
