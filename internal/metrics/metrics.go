package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes counters for fulfillments, assignments and deletions, a gauge
// for the last successful fulfillment, and a histogram for query duration.
type Metrics struct {
	Fulfillments        *prometheus.CounterVec
	EmployeesReassigned prometheus.Counter
	Assignments         *prometheus.CounterVec
	Deletions           *prometheus.CounterVec
	RequestsSubmitted   prometheus.Counter
	LastFulfillment     prometheus.Gauge
	DBQueryDuration     *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
// It initializes the counters for fulfillment outcomes, ledger assignments
// and lifecycle deletions, as well as the gauge and histogram used to track
// the last successful fulfillment and the duration of database queries.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Fulfillments: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffdesk_fulfillments_total",
			Help: "Total times a staffing request fulfillment has completed, by status.",
		}, []string{"status"}),
		EmployeesReassigned: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "staffdesk_employees_reassigned_total",
			Help: "Total number of employees moved to a location by fulfillment.",
		}),
		Assignments: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffdesk_assignments_total",
			Help: "Total number of ledger assignment operations, by kind.",
		}, []string{"kind"}),
		Deletions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffdesk_deletions_total",
			Help: "Total number of deleted entities, by type.",
		}, []string{"type"}),
		RequestsSubmitted: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "staffdesk_requests_submitted_total",
			Help: "Total number of staffing requests accepted into the queue.",
		}),
		LastFulfillment: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "staffdesk_last_fulfillment_timestamp",
			Help: "Last time a fulfillment committed successfully.",
		}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffdesk_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'get_employee', 'close_request'
	}

	metrics.Fulfillments.WithLabelValues("success")
	metrics.Fulfillments.WithLabelValues("failure")

	return metrics
}
