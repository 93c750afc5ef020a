package logger

import (
	"io"
	"log/slog"
	"os"
)

// New opens a logger writing to the given file. The dashboard draws on
// stdout, so an empty path discards all log output instead of corrupting
// the screen.
func New(path string, level string, format string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return NewWithWriter(io.Discard, level, format), nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	return NewWithWriter(f, level, format), f, nil
}

func NewWithWriter(w io.Writer, level string, format string) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level: lvl,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
