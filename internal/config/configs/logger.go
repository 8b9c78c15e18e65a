package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the structured logger. Level is one of "debug",
// "info", "warn" or "error"; Format is "text" (default) or "json".
// Unknown values fall back to the defaults.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel converts the textual level into a slog.Level. Unknown levels
// default to slog.LevelInfo.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat normalises the requested format to "json" or "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(c.Format, "json") {
		return "json"
	}
	return "text"
}

// NewLogger builds a slog.Logger writing to w with the configured level
// and encoding.
func (c Logger) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	var handler slog.Handler
	switch c.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
