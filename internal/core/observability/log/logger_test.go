package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	atomic := zap.NewAtomicLevelAt(level)
	core, logs := observer.New(atomic)
	return &Logger{zapLogger: zap.New(core), level: atomic}, logs
}

func TestFieldsReachZap(t *testing.T) {
	l, logs := newObserved(zap.DebugLevel)

	l.Info("asset loaded",
		String("name", "Hero"),
		Uint64("uuid", 42),
		Int("count", 3),
		Bool("live", true),
		Duration("took", time.Second),
		Error(errors.New("boom")),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "asset loaded", entry.Message)
	ctx := entry.ContextMap()
	assert.Equal(t, "Hero", ctx["name"])
	assert.Equal(t, uint64(42), ctx["uuid"])
	assert.Equal(t, int64(3), ctx["count"])
	assert.Equal(t, true, ctx["live"])
	assert.Equal(t, time.Second, ctx["took"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestLogRespectsLevel(t *testing.T) {
	l, logs := newObserved(zap.InfoLevel)

	l.Log(LevelDebug, "hidden")
	l.Log(LevelWarn, "shown")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zap.WarnLevel, logs.All()[0].Level)

	l.SetLevel(LevelError)
	assert.Equal(t, LevelError, l.GetLevel())
	l.Warn("dropped")
	assert.Equal(t, 1, logs.Len())
}

func TestWithCarriesFields(t *testing.T) {
	l, logs := newObserved(zap.DebugLevel)

	l.With(String("component", "assets")).Debug("ready")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "assets", logs.All()[0].ContextMap()["component"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestNopDiscards(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Info("nothing", String("k", "v"))
		_ = l.Sync()
	})
}
