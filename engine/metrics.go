package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusOK    = "ok"
	statusNull  = "null"
	statusError = "error"

	unknownMetric = "unknown"
)

// EvaluationsTotal counts SQL distance evaluations by metric and outcome.
// Unrecognised metric names are recorded as "unknown".
var EvaluationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vecmetric_sql_distance_total",
		Help: "Total number of SQL distance function evaluations by metric and status",
	},
	[]string{"metric", "status"},
)

func observe(metricName, status string) {
	EvaluationsTotal.WithLabelValues(metricName, status).Inc()
}
