package audit

import (
	"context"
	"log/slog"
)

// Logger writes audit events as structured log records.
type Logger struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Logger {
	return &Logger{log: log.With("component", "audit")}
}

func (l *Logger) Log(ev Event) error {
	attrs := []slog.Attr{
		slog.String("action", ev.Action),
		slog.String("entity", ev.Entity),
	}
	if ev.RequestID != "" {
		attrs = append(attrs, slog.String("request_id", ev.RequestID))
	}
	if ev.Metadata != nil {
		attrs = append(attrs, slog.Any("metadata", ev.Metadata))
	}
	l.log.LogAttrs(context.Background(), slog.LevelInfo, "audit", attrs...)
	return nil
}
