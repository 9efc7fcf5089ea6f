package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the back office service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	ContractRecordsTotal   *prometheus.CounterVec
	AvailabilityEntries    *prometheus.CounterVec
	RetentionDeletedTotal  prometheus.Counter
	IoFlightEventsTotal    *prometheus.CounterVec
	ExperienceApplications prometheus.Counter
	JobDuration            *prometheus.HistogramVec
}

var (
	defaultOnce     sync.Once
	defaultRegistry *MetricsRegistry
)

// Default returns the registry bound to prometheus.DefaultRegisterer, creating it on
// first use.
func Default() *MetricsRegistry {
	defaultOnce.Do(func() {
		defaultRegistry = NewMetricsRegistry(prometheus.DefaultRegisterer)
	})
	return defaultRegistry
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fujip_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fujip_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fujip_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fujip_db_queries_total",
				Help: "Total reporting queries by query name and result",
			},
			[]string{"query_type", "result"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fujip_db_query_duration_seconds",
				Help:    "Reporting query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Cache Metrics
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fujip_cache_hits_total",
				Help: "Total member lookup cache hits",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fujip_cache_misses_total",
				Help: "Total member lookup cache misses",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		ContractRecordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fujip_contract_records_total",
				Help: "Contractor flight records written, by outcome (created, updated)",
			},
			[]string{"outcome"},
		),
		AvailabilityEntries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fujip_availability_entries_total",
				Help: "Availability entries received, by outcome and skip reason",
			},
			[]string{"outcome", "reason"},
		),
		RetentionDeletedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fujip_retention_deleted_rows_total",
				Help: "Availability rows removed by the retention job",
			},
		),
		IoFlightEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fujip_io_flight_events_total",
				Help: "Mountain entry and exit events",
			},
			[]string{"event"},
		),
		ExperienceApplications: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fujip_experience_applications_total",
				Help: "Experience course applications received",
			},
		),
		JobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fujip_job_duration_seconds",
				Help:    "Scheduled job execution time in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
			},
			[]string{"job_name", "result"},
		),
	}
}
