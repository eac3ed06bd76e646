package app

import (
	"io"
	"log/slog"
)

// logLevels maps the CLI level keywords onto slog levels. An unknown keyword
// falls back to info so a stale config still produces output.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the app's own logger writing to outW. The process-default
// logger is never touched; parses running side by side, and tests capturing
// output, each keep their own sink.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, ok := logLevels[levelStr]
	if !ok {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
