package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestCustomStdLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Output = &buf
	cfg.AsyncWrite = false

	log, err := NewCustomStdLogger(cfg)
	if err != nil {
		t.Fatalf("NewCustomStdLogger: %v", err)
	}

	log.Info("keystroke applied", "field", "CardNumber", "output_len", 4)
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if !strings.Contains(buf.String(), "keystroke applied") {
		t.Errorf("expected message in output, got %q", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	log.Debug("ignored")
	log.Info("ignored")
	log.Warn("ignored")
	log.Error("ignored")
	if err := log.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}
