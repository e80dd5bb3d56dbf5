package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger with the given level and encoding.
// level: debug, info, warn, error
// format: json, console
func New(level, format string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.Encoding = format
	config.EncoderConfig = encoderConfig
	// CLI output goes to stdout, diagnostics to stderr
	config.OutputPaths = []string{"stderr"}

	// Disable caller and stacktrace (too verbose)
	config.DisableCaller = true
	config.DisableStacktrace = true

	return config.Build()
}

// MustNew is like New but falls back to an info level JSON logger when the
// arguments are invalid.
func MustNew(level, format string) *zap.Logger {
	logger, err := New(level, format)
	if err != nil {
		logger, _ = New("info", "json")
	}
	return logger
}
