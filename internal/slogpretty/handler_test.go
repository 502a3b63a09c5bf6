package slogpretty

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogHandler_Handle(t *testing.T) {
	bufWo := bytes.NewBuffer(nil)
	bufWe := bytes.NewBuffer(nil)

	h := New(bufWo, bufWe, slog.LevelDebug)

	record := slog.Record{
		Time:    time.Date(2024, 06, 26, 0, 0, 0, 0, time.UTC),
		Message: "pattern registered",
		Level:   slog.LevelDebug,
	}
	record.Add("pattern", "/users/:id")
	record.Add("kind", "param")
	record.Add(slog.Group("foo", slog.String("bar", "bar")))
	require.NoError(t, h.Handle(context.Background(), record))
	record.Level = slog.LevelInfo
	require.NoError(t, h.Handle(context.Background(), record))
	record.Level = slog.LevelWarn
	require.NoError(t, h.Handle(context.Background(), record))

	assert.Zero(t, bufWe.Len())
	assert.Contains(t, bufWo.String(), "[KEETREE] ")
	assert.Contains(t, bufWo.String(), "pattern registered")
	assert.Contains(t, bufWo.String(), "/users/:id")

	record.Level = slog.LevelError
	record.Add("error", errors.New("boom"))
	require.NoError(t, h.Handle(context.Background(), record))
	assert.Contains(t, bufWe.String(), "boom")
}

func TestLogHandler_Enabled(t *testing.T) {
	h := New(bytes.NewBuffer(nil), bytes.NewBuffer(nil), slog.LevelInfo)

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestLogHandler_WithAttrsAndGroup(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	log := slog.New(New(buf, buf, slog.LevelDebug)).With("tree", "main").WithGroup("op")
	log.Debug("pattern removed", "pattern", "/files/*rest")

	out := buf.String()
	assert.Contains(t, out, "tree=")
	assert.Contains(t, out, "op.pattern=")
}

func TestNew_SharedWriter(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	h := New(buf, buf, slog.LevelDebug)
	assert.Same(t, h.Wo, h.We)

	h = New(buf, bytes.NewBuffer(nil), slog.LevelDebug)
	assert.NotSame(t, h.Wo, h.We)
}
