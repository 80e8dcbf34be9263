package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ripple/internal/adapters/logger"
)

func TestPrettyHandler(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	level := new(slog.LevelVar)
	h := logger.NewPrettyHandler(&buf, level)
	log := slog.New(h).With("feed", "local").WithGroup("pkg")

	log.Info("resolved", "name", "FubuCore")
	assert.Equal(t, "resolved pkg.feed=local pkg.name=FubuCore\n", buf.String())

	level.Set(slog.LevelWarn)
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}
