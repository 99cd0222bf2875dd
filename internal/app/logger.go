package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/catalog-backend/internal/config"
)

// serviceName tags every log line so catalog output can be told apart from
// the inventory system when both ship to the same sink.
const serviceName = "catalog-backend"

// NewLogger creates the process logger from cfg, writes to stderr and
// installs it as the slog default.
//
// Format "json" produces structured output for production; anything else
// produces text with source locations. Level accepts the slog names
// (debug, info, warn, error, also offsets like "warn+2") in any case and
// falls back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger builds the logger without touching the global default.
// Components derive children from it with their own "service" or
// "adapter" attribute.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	isJSON := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !isJSON,
	}

	var handler slog.Handler
	if isJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("app", serviceName),
		slog.String("version", Version),
	)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
