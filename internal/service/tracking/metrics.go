package tracking

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IngestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_ingest_total",
			Help: "Position ingestion attempts by outcome",
		},
		[]string{"outcome"}, // stored, duplicate, rejected, failed
	)

	GuardDegradedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracking_idempotency_guard_degraded_total",
			Help: "Ingestions accepted without dedup because the guard was unavailable",
		},
	)

	PublishFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracking_publish_failed_total",
			Help: "Fan-out publish failures (swallowed)",
		},
	)
)
