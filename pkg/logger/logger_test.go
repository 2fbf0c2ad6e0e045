package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &zapLogger{log: zap.New(core)}, logs
}

func TestFieldsReachStructuredOutput(t *testing.T) {
	log, logs := newObservedLogger()

	log.Debug(context.Background(), "batch published",
		String("topic", "orders.created"),
		Int("events", 7),
		Float64("elapsed_seconds", 0.25),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "batch published", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "orders.created", fields["topic"])
	assert.Equal(t, int64(7), fields["events"])
	assert.Equal(t, 0.25, fields["elapsed_seconds"])
}

func TestWithErrorRecordsErrorKey(t *testing.T) {
	log, logs := newObservedLogger()

	log.Error(context.Background(), "publish failed", WithError(errors.New("channel closed")))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "channel closed", logs.All()[0].ContextMap()["error"])
}

func TestLazyFieldResolvesOnEmit(t *testing.T) {
	log, logs := newObservedLogger()

	calls := 0
	log.Info(context.Background(), "snapshot", Lazy("size", func() any {
		calls++
		return 42
	}))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, 1, calls)
	assert.EqualValues(t, 42, logs.All()[0].ContextMap()["size"])
}
