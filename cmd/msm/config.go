package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmsm/logging"
	"github.com/katalvlaran/lvmsm/msm"
)

// envPrefix maps nested keys to MSM_* variables, e.g. log.level → MSM_LOG_LEVEL.
const envPrefix = "MSM"

// settings is the merged file, environment and flag configuration.
type settings struct {
	Lag        int            `mapstructure:"lag"`
	Method     string         `mapstructure:"method"`
	Cutoff     float64        `mapstructure:"cutoff"`
	Prior      float64        `mapstructure:"prior"`
	Timescales int            `mapstructure:"timescales"`
	Log        logging.Config `mapstructure:"log"`
}

// newViper returns a viper instance with YAML files, MSM_ env binding and
// defaults for every key, so that environment overrides resolve on Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("lag", msm.DefaultLagTime)
	v.SetDefault("method", "mle")
	v.SetDefault("cutoff", msm.DefaultErgodicCutoff)
	v.SetDefault("prior", msm.DefaultPriorCounts)
	v.SetDefault("timescales", msm.DefaultTimescales)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	return v
}

// loadSettings reads configPath when set and unmarshals the merged state.
func loadSettings(v *viper.Viper, configPath string) (settings, error) {
	var s settings
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return s, fmt.Errorf("config: read %q: %w", configPath, err)
		}
	}
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("config: unmarshal: %w", err)
	}

	return s, nil
}

// modelOptions converts settings into msm options.
func (s settings) modelOptions() []msm.Option {
	return []msm.Option{
		msm.WithLagTime(s.Lag),
		msm.WithMethodName(s.Method),
		msm.WithErgodicCutoff(s.Cutoff),
		msm.WithPriorCounts(s.Prior),
		msm.WithTimescales(s.Timescales),
		msm.WithNoneLabel(missingLabel),
	}
}
