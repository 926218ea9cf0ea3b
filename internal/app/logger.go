package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated logger writing to w. Level names are those
// slog understands ("debug", "info", "warn", "error"); anything else means
// info. formatStr "json" selects the JSON handler, anything else text.
// The returned LevelVar adjusts the logger's minimum level at runtime.
func newLogger(levelStr, formatStr string, w io.Writer) (*slog.Logger, *slog.LevelVar) {
	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level.Set(slog.LevelInfo)
	}
	opts := &slog.HandlerOptions{Level: level}

	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), level
	}
	return slog.New(slog.NewTextHandler(w, opts)), level
}
