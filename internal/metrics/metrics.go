package metrics

import (
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors are constructed eagerly so callers never see nil metrics;
// Register exposes them on the default registry.
var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ytadda_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ytadda_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	FilterApplications = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ytadda_filter_applications_total",
			Help: "Total listing filter evaluations.",
		},
	)

	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ytadda_cache_hits_total",
			Help: "Total Redis cache hits.",
		},
	)

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ytadda_cache_misses_total",
			Help: "Total Redis cache misses.",
		},
	)

	InquiriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytadda_inquiries_total",
			Help: "Total composed inquiries, by kind.",
		},
		[]string{"kind"},
	)

	SessionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ytadda_sessions_created_total",
			Help: "Total browsing sessions created.",
		},
	)

	BannerRotations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ytadda_banner_rotations_total",
			Help: "Total automatic banner carousel advances.",
		},
	)

	CatalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ytadda_catalog_listings",
			Help: "Number of listings in the loaded catalog.",
		},
	)
)

var registerOnce sync.Once

// Register adds all collectors to the default Prometheus registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestDuration,
			RequestsInFlight,
			FilterApplications,
			CacheHits,
			CacheMisses,
			InquiriesTotal,
			SessionsCreated,
			BannerRotations,
			CatalogSize,
		)
	})
}

// RegisterPool exposes live connection counts for the catalog database pool.
func RegisterPool(pool *pgxpool.Pool) {
	prometheus.MustRegister(
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "ytadda_db_connection_pool_active",
				Help: "Number of active database connections.",
			},
			func() float64 {
				return float64(pool.Stat().AcquiredConns())
			},
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "ytadda_db_connection_pool_idle",
				Help: "Number of idle database connections.",
			},
			func() float64 {
				return float64(pool.Stat().IdleConns())
			},
		),
	)
}
