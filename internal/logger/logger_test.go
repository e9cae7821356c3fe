package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/deppfellow/lazy-virtuoso/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/event"
)

func TestProductionLoggerWritesJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Str("collection", "poem").Msg("inserted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inserted", entry["message"])
	assert.Equal(t, "poem", entry["collection"])
	assert.Equal(t, config.ServiceName, entry["service"])
	assert.Equal(t, "production", entry["environment"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)
	log.Info().Msg("hidden")

	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("whatever"))
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	log := WithTraceContext(base, nil)
	log.Info().Msg("x")

	assert.NotContains(t, buf.String(), "trace.id")
}

func TestCommandMonitorFlagsSlowCommands(t *testing.T) {
	var buf bytes.Buffer
	monitor := NewCommandMonitor(zerolog.New(&buf).Level(zerolog.WarnLevel), 50*time.Millisecond)

	fast := &event.CommandSucceededEvent{}
	fast.CommandName = "find"
	fast.Duration = time.Millisecond
	monitor.Succeeded(t.Context(), fast)
	assert.Empty(t, buf.String())

	slow := &event.CommandSucceededEvent{}
	slow.CommandName = "find"
	slow.Duration = 80 * time.Millisecond
	monitor.Succeeded(t.Context(), slow)
	assert.Contains(t, buf.String(), `"slow":true`)
	assert.Contains(t, buf.String(), `"command":"find"`)
}
