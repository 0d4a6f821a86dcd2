package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{" warn ", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInit_WritesFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	path := filepath.Join(t.TempDir(), "app.log")
	if err := Init("debug", path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("dataset loaded", zap.String("file", "headlines.csv"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"dataset loaded"`) || !strings.Contains(string(data), "headlines.csv") {
		t.Errorf("log file missing entry: %s", data)
	}
}

func TestInit_BadFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	if err := Init("info", filepath.Join(t.TempDir(), "missing", "app.log")); err == nil {
		t.Error("Expected error for unwritable log file")
	}
}
