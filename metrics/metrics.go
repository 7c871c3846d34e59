package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hackathon_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hackathon_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hackathon_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hackathon_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hackathon_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// ScoreUpserts counts judging score writes per hackathon
	ScoreUpserts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hackathon_score_upserts_total",
			Help: "Total number of judging score upserts",
		},
		[]string{"hackathon"},
	)

	// InvitesSent counts team invites created
	InvitesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hackathon_team_invites_sent_total",
			Help: "Total number of team invites created",
		},
	)

	// WebsocketClients tracks connected leaderboard websocket clients
	WebsocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hackathon_websocket_clients",
			Help: "Number of connected leaderboard websocket clients",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hackathon_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hackathon_goroutine_count",
			Help: "Number of goroutines",
		},
	)

	// CacheHits counts the number of leaderboard cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hackathon_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	// CacheMisses counts the number of leaderboard cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hackathon_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
