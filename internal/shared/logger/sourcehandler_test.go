package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(minSource slog.Level) (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewSourceHandler(base, minSource)), buf
}

func TestSourceHandler_Threshold(t *testing.T) {
	tests := []struct {
		name       string
		log        func(l *slog.Logger)
		minSource  slog.Level
		wantSource bool
	}{
		{"info below warn threshold", func(l *slog.Logger) { l.Info("hello") }, slog.LevelWarn, false},
		{"warn at threshold", func(l *slog.Logger) { l.Warn("careful") }, slog.LevelWarn, true},
		{"error above threshold", func(l *slog.Logger) { l.Error("boom") }, slog.LevelWarn, true},
		{"debug with debug threshold", func(l *slog.Logger) { l.Debug("trace") }, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferLogger(tt.minSource)
			tt.log(l)
			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte(`"source"`)))
		})
	}
}

func TestSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelError)

	l.With("component", "assets").WithGroup("upload").Info("stored", "key", "c1/logo/1-a.png")

	out := buf.String()
	assert.Contains(t, out, `"component":"assets"`)
	assert.Contains(t, out, `"upload":{"key":"c1/logo/1-a.png"}`)
	assert.NotContains(t, out, `"source"`)
}

func TestNopLogger_DoesNotPanic(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.With("a", 1).Named("x").Infow("message", "k", "v")
	})
}
