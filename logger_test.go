package hermes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/hupe1980/hermes/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level slog.Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level})), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestLoggerEvaluate(t *testing.T) {
	ctx := context.Background()
	l, buf := newBufferLogger(slog.LevelDebug)

	l.LogEvaluate(ctx, distance.MetricEuclidean, 3, nil)
	l.LogEvaluate(ctx, distance.MetricJeffrey, 3, errors.New("boom"))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "evaluate completed", lines[0]["msg"])
	assert.Equal(t, "Euclidean", lines[0]["metric"])
	assert.Equal(t, "WARN", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["error"])
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	l, buf := newBufferLogger(slog.LevelInfo)

	l.LogSave(ctx, 1, 24, nil)
	l.LogLoad(ctx, 1, 24, nil)
	assert.Zero(t, buf.Len(), "debug records are filtered at info level")

	l.LogSave(ctx, 1, 0, errors.New("disk full"))
	l.LogBatch(ctx, "save", 10, 2)
	l.LogBatch(ctx, "load", 10, 0)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "save failed", lines[0]["msg"])
	assert.Equal(t, float64(8), lines[1]["success"])
	assert.Equal(t, "batch completed", lines[2]["msg"])
}

func TestLoggerWith(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelInfo)

	l.WithID(7).WithMetric(distance.MetricCanberra).WithDimension(4).Info("hello")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, float64(7), lines[0]["id"])
	assert.Equal(t, "Canberra", lines[0]["metric"])
	assert.Equal(t, float64(4), lines[0]["dimension"])
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewTextLogger(slog.LevelDebug))
	assert.NotNil(t, NewJSONLogger(slog.LevelDebug))
}
