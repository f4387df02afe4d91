package graphpaper

import (
	"log/slog"

	"github.com/gogpu/graphpaper/internal/logging"
)

// SetLogger configures the logger for graphpaper and all its sub-packages.
// By default, graphpaper produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by graphpaper:
//   - [slog.LevelDebug]: item creation, redraws, grid geometry
//   - [slog.LevelInfo]: window open and close
//   - [slog.LevelWarn]: dropped input events, failed frame presentation
//
// Example:
//
//	// Enable debug-level logging to stderr:
//	graphpaper.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by graphpaper.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
