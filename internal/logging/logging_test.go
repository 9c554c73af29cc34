// ABOUTME: Tests for logger construction.
// ABOUTME: Verifies debug gating of log levels.
package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewQuiet(t *testing.T) {
	logger, err := New(false)
	if err != nil {
		t.Fatalf("New(false) error = %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("quiet logger should not enable any level")
	}
}

func TestNewDebug(t *testing.T) {
	logger, err := New(true)
	if err != nil {
		t.Fatalf("New(true) error = %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug logger should enable debug level")
	}
	if ce := logger.Check(zapcore.DebugLevel, "request"); ce == nil {
		t.Error("debug entries should be written")
	}
}
