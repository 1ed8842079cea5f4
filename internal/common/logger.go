package common

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a JSON logger on stderr so stdout carries only reports.
// Debug output is enabled by verbose, quiet keeps errors only.
func NewLogger(verbose, quiet bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	switch {
	case quiet:
		level = zapcore.ErrorLevel
	case verbose:
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = !verbose

	return cfg.Build()
}

// LoggerFromContext builds a logger from the global --verbose and --quiet flags.
func LoggerFromContext(c *cli.Context) (*zap.Logger, error) {
	return NewLogger(c.Bool("verbose"), c.Bool("quiet"))
}
