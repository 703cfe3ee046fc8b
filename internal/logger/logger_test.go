package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()

	info, err := New(false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug to be disabled by default")
	}

	debug, err := New(true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !debug.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug to be enabled")
	}
}

func TestConfigWritesToStderr(t *testing.T) {
	t.Parallel()

	for _, json := range []bool{false, true} {
		cfg := config(json, false)
		if len(cfg.OutputPaths) != 1 || cfg.OutputPaths[0] != "stderr" {
			t.Fatalf("expected stderr output, got %v", cfg.OutputPaths)
		}
	}

	if got := config(true, false).Encoding; got != "json" {
		t.Fatalf("expected json encoding, got %q", got)
	}
	if got := config(false, false).Encoding; got != "console" {
		t.Fatalf("expected console encoding, got %q", got)
	}
}
