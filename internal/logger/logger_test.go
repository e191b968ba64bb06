package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "web", slog.LevelDebug)

	log.Error("sheet write failed", Err(errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, "logger=web")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, `msg="sheet write failed"`)
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "web", slog.LevelInfo)
	log.Debug("hidden")
	assert.Empty(t, buf.String())
}
