package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns the JSON logger used across the service.
func New(service string) *slog.Logger {
	return NewWithWriter(os.Stdout, service)
}

func NewWithWriter(w io.Writer, service string) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(h).With("service", service)
}

// Discard returns a logger that drops everything, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
