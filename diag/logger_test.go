package diag

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	// None of these should panic.
	l.Debug("d", "k", 1)
	l.Info("i")
	l.Warn("w")
	l.Error("e")
	assert.Equal(t, NopLogger{}, l.With("k", "v"))
}

func TestSlogAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.Debug("debug msg", "depth", 3)
	l.Info("info msg")
	l.Warn("warn msg")
	l.Error("error msg")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG msg=\"debug msg\" depth=3")
	assert.Contains(t, out, "level=INFO msg=\"info msg\"")
	assert.Contains(t, out, "level=WARN msg=\"warn msg\"")
	assert.Contains(t, out, "level=ERROR msg=\"error msg\"")
}

func TestSlogAdapter_NilUsesDefault(t *testing.T) {
	l := NewSlogAdapter(nil)
	assert.NotNil(t, l.logger)
}
