// Package logging builds the zap loggers used by experiments and the
// command line tool
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/samuelfneumann/gobandit/errs"
)

// Log formats
const (
	JSON    = "json"
	Console = "console"
)

// Config configures a logger. If File is set, logs are additionally
// written as JSON to File, which is rotated once it reaches MaxSize
// megabytes.
type Config struct {
	Level      string `mapstructure:"level" yaml:"level" json:"level"`
	Format     string `mapstructure:"format" yaml:"format" json:"format"`
	File       string `mapstructure:"file" yaml:"file" json:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size" json:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" json:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age" json:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress" json:"compress"`

	// Color enables colored levels in the console format
	Color bool `mapstructure:"color" yaml:"color" json:"color"`
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     Console,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Color:      true,
	}
}

// Validate returns an error describing whether or not the
// configuration is valid
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return errs.InvalidArgument("validate", "no such log level %q",
			c.Level)
	}
	if c.Format != JSON && c.Format != Console {
		return errs.InvalidArgument("validate",
			"log format must be one of %q or %q, have(%q)", JSON, Console,
			c.Format)
	}
	return nil
}

// New returns a new logger which writes to console and, if configured,
// to a rotated log file
func New(c Config, console zapcore.WriteSyncer) (*zap.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := zapcore.ParseLevel(c.Level)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder(c.Format, c.Color), console, level),
	}

	if c.File != "" {
		file := zapcore.AddSync(&lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		})
		cores = append(cores, zapcore.NewCore(encoder(JSON, false), file,
			level))
	}

	return zap.New(zapcore.NewTee(cores...),
		zap.AddStacktrace(zap.ErrorLevel)).Named("bandit"), nil
}

func encoder(format string, color bool) zapcore.Encoder {
	conf := zap.NewProductionEncoderConfig()
	conf.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")

	conf.EncodeLevel = zapcore.CapitalLevelEncoder
	if format == Console {
		if color {
			conf.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		return zapcore.NewConsoleEncoder(conf)
	}

	return zapcore.NewJSONEncoder(conf)
}
