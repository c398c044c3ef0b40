package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/tallygo/internal/model"
)

// levelForVerbosity maps the -v count onto a log level. Every count above 2
// logs the same as 2.
func levelForVerbosity(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(verbosity int, formatStr string, outW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: levelForVerbosity(verbosity)}
	var handler slog.Handler

	if formatStr == model.LogFormatJSON {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
