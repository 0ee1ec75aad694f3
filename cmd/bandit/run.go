package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/samuelfneumann/gobandit/config"
	"github.com/samuelfneumann/gobandit/experiment"
	"github.com/samuelfneumann/gobandit/logging"
	"github.com/samuelfneumann/gobandit/utils/progressbar"
)

// Width of the progress bar in characters
const barWidth = 40

func newRunCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string
	var quiet bool

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run an experiment and plot the learning curve of each agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags bound to v take precedence over the config file
			cfg, err := config.LoadInto(v, cfgFile)
			if err != nil {
				return err
			}
			return runExperiment(cmd, cfg, quiet)
		},
	}

	flags := runCmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (yaml, json, or toml)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "do not display a progress bar")
	flags.Int("trials", 0, "number of independent trials per agent")
	flags.Int("steps", 0, "number of steps per trial")
	flags.Uint64("seed", 0, "random seed, 0 for a time-based seed")
	flags.Int("k", 0, "number of arms")
	flags.String("distribution", "", "reward distribution: uniform, normal, or beta")
	flags.Bool("smooth", false, "report the running average reward of each trial")
	flags.StringP("output", "o", "", "plot file, format chosen by extension")
	flags.String("data", "", "file to save the learning curves to")

	for key, flag := range map[string]string{
		"trials":                  "trials",
		"steps":                   "steps",
		"seed":                    "seed",
		"output":                  "output",
		"data":                    "data",
		"experiment.k":            "k",
		"experiment.distribution": "distribution",
		"experiment.smooth":       "smooth",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	return runCmd
}

func runExperiment(cmd *cobra.Command, cfg *config.Config, quiet bool) error {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Logger.Color = false
	}
	logger, err := logging.New(cfg.Logger,
		zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())))
	if err != nil {
		return err
	}
	defer logger.Sync()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	opts := []experiment.Option{
		experiment.WithSeed(seed),
		experiment.WithLogger(logger),
	}

	var bar *progressbar.ManualProgressBar
	if !quiet {
		bar = progressbar.NewManualProgressBar(cmd.OutOrStdout(), barWidth,
			cfg.Trials*len(cfg.Experiment.Agents))
		opts = append(opts, experiment.WithProgress(bar))
	}

	exp, err := experiment.New(cfg.Trials, cfg.Steps, cfg.Experiment, opts...)
	if err != nil {
		return fmt.Errorf("could not create experiment: %w", err)
	}
	logger.Info("starting experiment",
		zap.Int("trials", cfg.Trials),
		zap.Int("steps", cfg.Steps),
		zap.Uint64("seed", seed),
		zap.Int("k", cfg.Experiment.K),
		zap.String("distribution", string(cfg.Experiment.Distribution)),
	)

	exp.Run()
	if bar != nil {
		bar.Close()
	}

	if err := makeParent(cfg.Output); err != nil {
		return err
	}
	if err := exp.Plot(cfg.Output); err != nil {
		return err
	}
	logger.Info("saved plot", zap.String("path", cfg.Output))
	printSummary(cmd.OutOrStdout(), colors(cmd), exp.Results())

	if cfg.Data != "" {
		if err := makeParent(cfg.Data); err != nil {
			return err
		}
		if err := exp.Save(cfg.Data); err != nil {
			return err
		}
		logger.Info("saved data", zap.String("path", cfg.Data))
	}

	return nil
}

// makeParent creates the directory that will hold the file at path
func makeParent(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create directory for %v: %w", path, err)
	}
	return nil
}
