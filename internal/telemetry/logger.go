package telemetry

import (
	"log/slog"
	"os"
)

// InitLogger configures the default slog logger. Logs go to stderr as JSON
// because stdout carries the tee'd process output and the summary report.
func InitLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
