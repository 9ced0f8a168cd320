// Package observability holds Prometheus metrics and OpenTelemetry tracing setup.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DuplicateLikes counts like requests that matched an existing
	// (post, user) edge and were absorbed as no-ops.
	DuplicateLikes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_duplicate_likes_total",
		Help: "Total number of like requests absorbed as idempotent no-ops",
	})

	// NoopUnlikes counts unlike requests for which no edge existed.
	NoopUnlikes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_noop_unlikes_total",
		Help: "Total number of unlike requests absorbed as idempotent no-ops",
	})

	// CascadedRows counts child rows removed by post cascade deletes, by table.
	CascadedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_cascaded_rows_total",
		Help: "Total number of child rows removed by post cascade deletes",
	}, []string{"table"})
)
