// Package logging constructs the zap loggers used across the tool.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/course-kit/coursekit/internal/config"
)

// New returns a console logger that also appends to the tool log file under
// the XDG state directory. With verbose set it logs at debug level,
// otherwise warnings and errors only so CLI output stays clean.
func New(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	if logFile, err := stateLogFile(); err == nil {
		cfg.OutputPaths = append(cfg.OutputPaths, logFile)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// stateLogFile resolves the log file path under the tool state directory,
// creating the directory if needed.
func stateLogFile() (string, error) {
	logDir := filepath.Join(config.DefaultStateDir(), "logs")
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return "", err
	}
	return filepath.Join(logDir, "coursekit.log"), nil
}
