package kohonen

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/hupe1980/kohonen/lattice"
	"github.com/hupe1980/kohonen/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger(buf *bytes.Buffer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := bufferLogger(&buf, slog.LevelDebug).
		WithGrid(3, 4).
		WithDimension(2).
		WithRun(100, 0.5, 2)

	logger.LogStep(context.Background(), 7, 1, lattice.Match{Position: lattice.Position{Row: 1, Col: 2}, Distance: 0.25}, 0.4, 1.5)

	out := buf.String()
	assert.Contains(t, out, `"msg":"step completed"`)
	assert.Contains(t, out, `"rows":3`)
	assert.Contains(t, out, `"cols":4`)
	assert.Contains(t, out, `"dimension":2`)
	assert.Contains(t, out, `"max_iterate":100`)
	assert.Contains(t, out, `"iteration":7`)
	assert.Contains(t, out, `"bmu":"(1,2)"`)
	assert.Contains(t, out, `"bmu_distance":0.25`)
}

func TestLoggerLogRun(t *testing.T) {
	var buf bytes.Buffer
	logger := bufferLogger(&buf, slog.LevelInfo)

	logger.LogRun(context.Background(), 10, time.Millisecond, nil)
	assert.Contains(t, buf.String(), "training completed")

	buf.Reset()
	logger.LogRun(context.Background(), 3, time.Millisecond, errors.New("boom"))
	assert.Contains(t, buf.String(), "training interrupted")
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestNoopLoggerDiscards(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	logger.LogRun(context.Background(), 1, time.Second, nil)
}

func TestTrainerLogging(t *testing.T) {
	var buf bytes.Buffer
	src := []vector.Vector[float64]{vector.Of(0.0), vector.Of(1.0)}
	cells := [][]vector.Vector[float64]{{vector.Of(0.5), vector.Of(0.5)}}

	tr, err := New(src, cells, 4, 0.5, 1.0,
		WithLogger(bufferLogger(&buf, slog.LevelDebug)),
		WithProgressInterval(time.Nanosecond),
	)
	require.NoError(t, err)
	require.NoError(t, tr.Run(context.Background()))

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, `"msg":"step completed"`))
	assert.Contains(t, out, `"msg":"training progress"`)
	assert.Contains(t, out, `"msg":"training completed"`)
	assert.Contains(t, out, `"steps":4`)
}

func TestTrainerLoggingInfoLevelSkipsSteps(t *testing.T) {
	var buf bytes.Buffer
	src := []vector.Vector[float64]{vector.Of(0.0)}
	cells := [][]vector.Vector[float64]{{vector.Of(0.5)}}

	tr, err := New(src, cells, 3, 0.5, 1.0,
		WithLogger(bufferLogger(&buf, slog.LevelInfo)),
		WithProgressInterval(0),
	)
	require.NoError(t, err)
	require.NoError(t, tr.Run(context.Background()))

	out := buf.String()
	assert.NotContains(t, out, "step completed")
	assert.NotContains(t, out, "training progress")
	assert.Contains(t, out, "training completed")
}
