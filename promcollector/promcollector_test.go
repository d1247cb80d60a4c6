package promcollector

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hupe1980/kohonen"
	"github.com/hupe1980/kohonen/vector"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.RecordStep(time.Millisecond, 0.75)
	c.RecordStep(2*time.Millisecond, 0.25)
	c.RecordRun(2, 3*time.Millisecond, nil)
	c.RecordRun(0, time.Millisecond, errors.New("cancelled"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.steps))
	assert.Equal(t, 0.25, testutil.ToFloat64(c.bmuDistance))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues("error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.runSteps))

	expected := `
# HELP kohonen_steps_total Total training steps completed
# TYPE kohonen_steps_total counter
kohonen_steps_total 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "kohonen_steps_total"))
}

func TestCollectorRegistersAllMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	c.RecordRun(0, 0, nil)

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	assert.Panics(t, func() { New(reg) })
}

func TestCollectorNilRegisterer(t *testing.T) {
	c := New(nil)
	c.RecordStep(time.Microsecond, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.steps))
}

func TestCollectorWithTrainer(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	src := []vector.Vector[float64]{vector.Of(0.0), vector.Of(1.0)}
	cells := [][]vector.Vector[float64]{{vector.Of(0.2), vector.Of(0.8)}}

	tr, err := kohonen.New(src, cells, 30, 0.5, 1.0, kohonen.WithMetricsCollector(c), kohonen.WithSeed(2))
	require.NoError(t, err)
	require.NoError(t, tr.Run(context.Background()))

	assert.Equal(t, 30.0, testutil.ToFloat64(c.steps))
	assert.Equal(t, 30.0, testutil.ToFloat64(c.runSteps))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues("success")))
}
