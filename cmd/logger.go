package cmd

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a JSON logger tagged with the host and service names.
func NewLogger(w io.Writer, service string, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// time -> timestamp
			if a.Key == slog.TimeKey {
				return slog.String("timestamp", a.Value.Time().Format("2006-01-02T15:04:05Z07:00"))
			}

			// msg -> message
			if a.Key == slog.MessageKey {
				return slog.String("message", a.Value.String())
			}

			return a
		},
	})

	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return slog.New(handler).With("host", host, "service", service)
}
