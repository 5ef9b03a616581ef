package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewWritesToStateLogFile(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	logger := New(false)
	logger.Warn("log file sink check")
	_ = logger.Sync()

	logFile := filepath.Join(dataHome, "coursekit", "logs", "coursekit.log")
	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("state log file not written: %v", err)
	}
	if !strings.Contains(string(data), "log file sink check") {
		t.Fatalf("log entry missing from state log file: %q", data)
	}
}

func TestNewLevelSelection(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	if logger := New(true); !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("verbose logger must enable debug")
	}
	if logger := New(false); logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("quiet logger must not enable info")
	}
}
