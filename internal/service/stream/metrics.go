package stream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracking_stream_sessions_active",
			Help: "Currently open live tracking sessions",
		},
	)

	EventsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_stream_events_sent_total",
			Help: "Events written to live tracking sessions",
		},
		[]string{"event"}, // position, heartbeat
	)

	SessionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tracking_stream_session_duration_seconds",
			Help:    "Live tracking session lifetime",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800, 3600},
		},
	)
)
