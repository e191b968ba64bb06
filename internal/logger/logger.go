package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger tagged with the component name
func New(name string) *slog.Logger {
	return NewWithWriter(os.Stdout, name, slog.LevelInfo)
}

// NewWithWriter returns a text logger writing to w at the given level
func NewWithWriter(w io.Writer, name string, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	h := handler.WithAttrs([]slog.Attr{slog.String("logger", name)})
	return slog.New(h)
}

// Discard returns a logger that drops everything, for tests
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Err formats an error as a log attribute
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
