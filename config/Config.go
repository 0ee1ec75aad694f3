// Package config loads the configuration of the bandit command line
// tool from configuration files, environment variables, and defaults
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/samuelfneumann/gobandit/environment"
	"github.com/samuelfneumann/gobandit/errs"
	"github.com/samuelfneumann/gobandit/experiment"
	"github.com/samuelfneumann/gobandit/logging"
)

// EnvPrefix prefixes environment variables that override configuration
// keys, e.g. BANDIT_TRIALS or BANDIT_EXPERIMENT_K
const EnvPrefix = "BANDIT"

// Config is the configuration of a run of the command line tool
type Config struct {
	Trials     int               `mapstructure:"trials" yaml:"trials"`
	Steps      int               `mapstructure:"steps" yaml:"steps"`
	Seed       uint64            `mapstructure:"seed" yaml:"seed"`
	Output     string            `mapstructure:"output" yaml:"output"`
	Data       string            `mapstructure:"data" yaml:"data"`
	Experiment experiment.Config `mapstructure:"experiment" yaml:"experiment"`
	Logger     logging.Config    `mapstructure:"logger" yaml:"logger"`
}

// SetDefaults sets the default value of every configuration key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("trials", 2000)
	v.SetDefault("steps", 1000)
	v.SetDefault("seed", 0)
	v.SetDefault("output", "experiment.svg")
	v.SetDefault("data", "")

	// -- Experiment --
	exp := experiment.DefaultConfig()
	v.SetDefault("experiment.k", exp.K)
	v.SetDefault("experiment.distribution", string(exp.Distribution))
	v.SetDefault("experiment.smooth", exp.Smooth)
	agents := make([]map[string]interface{}, len(exp.Agents))
	for i, a := range exp.Agents {
		agents[i] = map[string]interface{}{
			"algorithm": string(a.Algorithm),
			"epsilon":   a.Epsilon,
			"alpha":     a.Alpha,
			"c":         a.C,
		}
	}
	v.SetDefault("experiment.agents", agents)

	// -- Logger --
	log := logging.DefaultConfig()
	v.SetDefault("logger.level", log.Level)
	v.SetDefault("logger.format", log.Format)
	v.SetDefault("logger.file", log.File)
	v.SetDefault("logger.max_size", log.MaxSize)
	v.SetDefault("logger.max_backups", log.MaxBackups)
	v.SetDefault("logger.max_age", log.MaxAge)
	v.SetDefault("logger.compress", log.Compress)
	v.SetDefault("logger.color", log.Color)
}

// BindEnv makes every configuration key overridable by a BANDIT_
// prefixed environment variable
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// NewConfigFromViper unmarshals and validates the configuration held
// by v
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Distributions are matched case-insensitively
	if d, err := environment.ParseDistribution(
		string(cfg.Experiment.Distribution)); err == nil {
		cfg.Experiment.Distribution = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Load loads the configuration from the file at path, falling back to
// environment variables and then defaults for missing keys. If path is
// empty, only environment variables and defaults are used.
func Load(path string) (*Config, error) {
	return LoadInto(viper.New(), path)
}

// LoadInto is like Load, but reads into v. Values already bound to v,
// such as command line flags, take precedence over the file.
func LoadInto(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	BindEnv(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file %v: %w",
				path, err)
		}
	}

	return NewConfigFromViper(v)
}

// Validate checks the configuration for sane values
func (c *Config) Validate() error {
	if c.Trials <= 0 {
		return errs.InvalidArgument("validate",
			"trials must be a positive integer, have(%v)", c.Trials)
	}
	if c.Steps <= 0 {
		return errs.InvalidArgument("validate",
			"steps must be a positive integer, have(%v)", c.Steps)
	}
	if c.Output == "" {
		return errs.InvalidArgument("validate", "output must be set")
	}
	if err := c.Experiment.Validate(); err != nil {
		return fmt.Errorf("experiment configuration invalid: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger configuration invalid: %w", err)
	}
	return nil
}
