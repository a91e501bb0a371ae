package logging

import (
	"log/slog"
	"os"
)

// New builds the process logger: JSON records in production, readable text
// otherwise. Output goes to stderr so command output on stdout stays clean.
func New(env string) *slog.Logger {
	var handler slog.Handler

	if env == "production" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})
	}

	return slog.New(handler)
}
