package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/catalog-backend/internal/config"
	"github.com/heartmarshall/catalog-backend/internal/domain"
	"github.com/heartmarshall/catalog-backend/internal/service/inventory"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &m), "line: %s", raw)
		out = append(out, m)
	}
	return out
}

func TestNewLogger_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	assert.Same(t, logger.Handler(), slog.Default().Handler())
}

func TestNewLogger_BaseAttributes(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, config.LogConfig{Level: "info", Format: "json"}).Info("starting application")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, serviceName, lines[0]["app"])
	assert.Equal(t, Version, lines[0]["version"])
	assert.NotContains(t, lines[0], "source", "json output carries no source location")
}

func TestNewLogger_TextIncludesSource(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, config.LogConfig{Level: "info", Format: "text"}).Info("hello")

	assert.Contains(t, buf.String(), "source=")
	assert.Contains(t, buf.String(), "app="+serviceName)
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"warn+2", slog.LevelWarn + 2},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, config.LogConfig{Level: tt.level, Format: "json"})

			logger.Log(context.Background(), tt.want, "should appear")
			assert.NotZero(t, buf.Len(), "expected output at %v", tt.want)

			buf.Reset()
			logger.Log(context.Background(), tt.want-1, "should be suppressed")
			assert.Zero(t, buf.Len(), "level %v leaked: %s", tt.want-1, buf.String())
		})
	}
}

// Component loggers inherit the base attributes and add their own.
func TestNewLogger_ReactorChildLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "debug", Format: "json"})

	productID := uuid.New()
	reactor := inventory.NewReactor(logger, nil, nil)
	require.NoError(t, reactor.HandleStockChanged(context.Background(), domain.StockChanged{
		EventID:   "evt-1",
		ProductID: productID,
	}))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	line := lines[0]
	assert.Equal(t, "DEBUG", line["level"])
	assert.Equal(t, "stock changed, no cache to invalidate", line["msg"])
	assert.Equal(t, serviceName, line["app"])
	assert.Equal(t, "inventory_reactor", line["service"])
	assert.Equal(t, "evt-1", line["event_id"])
	assert.Equal(t, productID.String(), line["product_id"])
}

func TestNewLogger_InfoHidesReactorDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "info", Format: "json"})

	reactor := inventory.NewReactor(logger, nil, nil)
	require.NoError(t, reactor.HandleStockChanged(context.Background(), domain.StockChanged{EventID: "evt-2", ProductID: uuid.New()}))

	assert.Zero(t, buf.Len())
}
