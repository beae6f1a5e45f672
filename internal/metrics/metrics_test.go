package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// TestRecorders verifies each helper increments its counter.
func TestRecorders(t *testing.T) {
	beforeComputed := testutil.ToFloat64(computationsCounter.WithLabelValues("mile"))
	beforeFailed := testutil.ToFloat64(parseFailuresCounter.WithLabelValues("empty"))
	beforeCleared := testutil.ToFloat64(clearedCounter)
	beforeNotified := testutil.ToFloat64(notificationsCounter)

	RecordComputation("mile")
	RecordParseFailure("empty")
	RecordCleared()
	RecordNotification()
	RecordNotification()

	require.InDelta(t, beforeComputed+1, testutil.ToFloat64(computationsCounter.WithLabelValues("mile")), 0)
	require.InDelta(t, beforeFailed+1, testutil.ToFloat64(parseFailuresCounter.WithLabelValues("empty")), 0)
	require.InDelta(t, beforeCleared+1, testutil.ToFloat64(clearedCounter), 0)
	require.InDelta(t, beforeNotified+2, testutil.ToFloat64(notificationsCounter), 0)
}

// TestWriteText renders only planner metrics from the gatherer.
func TestWriteText(t *testing.T) {
	RecordComputation("kilometer")

	var buf bytes.Buffer

	require.NoError(t, WriteText(&buf, prometheus.DefaultGatherer))

	out := buf.String()
	require.Contains(t, out, "# HELP pace_planner_planner_computations_total Number of pace results built, by unit.")
	require.Contains(t, out, "# TYPE pace_planner_planner_computations_total counter")
	require.Contains(t, out, `pace_planner_planner_computations_total{unit="kilometer"}`)
	require.Contains(t, out, "# TYPE pace_planner_store_notifications_total counter")
	require.NotContains(t, out, "go_goroutines")
}

// TestWriteText_IsolatedRegistry checks label ordering on a private registry.
func TestWriteText_IsolatedRegistry(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "demo_total",
		Help:      "Demo counter.",
	}, []string{"b", "a"})
	reg.MustRegister(c)
	c.WithLabelValues("2", "1").Add(3)

	var buf bytes.Buffer

	require.NoError(t, WriteText(&buf, reg))
	require.Equal(t, "# HELP pace_planner_demo_total Demo counter.\n"+
		"# TYPE pace_planner_demo_total counter\n"+
		"pace_planner_demo_total{a=\"1\",b=\"2\"} 3\n", buf.String())
}

// TestWriteText_Histogram keeps bucket, sum and count samples of non-counter metrics.
func TestWriteText_Histogram(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	h := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "demo_seconds",
		Help:      "Demo histogram.",
		Buckets:   []float64{1, 5},
	})
	reg.MustRegister(h)
	h.Observe(2)
	h.Observe(3)

	var buf bytes.Buffer

	require.NoError(t, WriteText(&buf, reg))

	out := buf.String()
	require.Contains(t, out, "# TYPE pace_planner_demo_seconds histogram")
	require.Contains(t, out, `pace_planner_demo_seconds_bucket{le="1"} 0`)
	require.Contains(t, out, `pace_planner_demo_seconds_bucket{le="5"} 2`)
	require.Contains(t, out, "pace_planner_demo_seconds_sum 5")
	require.Contains(t, out, "pace_planner_demo_seconds_count 2")
}
