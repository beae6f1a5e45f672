package metrics

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "pace_planner"

var (
	computationsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "planner",
		Name:      "computations_total",
		Help:      "Number of pace results built, by unit.",
	}, []string{"unit"})

	parseFailuresCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "planner",
		Name:      "parse_failures_total",
		Help:      "Number of goal times that could not be parsed, by reason.",
	}, []string{"reason"})

	clearedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "planner",
		Name:      "cleared_total",
		Help:      "Number of times the planner published an empty result.",
	})

	notificationsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "notifications_total",
		Help:      "Number of subscriber callbacks invoked by the pace store.",
	})
)

func init() { //nolint:gochecknoinits // Counters live in the default registry like the rest of the process.
	prometheus.MustRegister(computationsCounter, parseFailuresCounter, clearedCounter, notificationsCounter)
}

// RecordComputation counts a freshly built result.
func RecordComputation(unit string) {
	computationsCounter.WithLabelValues(unit).Inc()
}

// RecordParseFailure counts a rejected goal time.
func RecordParseFailure(reason string) {
	parseFailuresCounter.WithLabelValues(reason).Inc()
}

// RecordCleared counts an empty publication.
func RecordCleared() {
	clearedCounter.Inc()
}

// RecordNotification counts one subscriber callback.
func RecordNotification() {
	notificationsCounter.Inc()
}

// WriteText writes every planner metric family from g in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), namespace+"_") {
			continue
		}

		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
