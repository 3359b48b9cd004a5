package route

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReplanTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_replan_total",
			Help: "Route replans by trigger and provider",
		},
		[]string{"trigger", "provider"},
	)

	ReplanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "route_replan_duration_seconds",
			Help:    "Route replan duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 3, 5},
		},
		[]string{"trigger"},
	)

	DeviationDistanceKm = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "route_deviation_distance_km",
			Help:    "Distance from the driver to the next planned stop",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	)

	NotifyFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "route_notify_failed_total",
			Help: "Route replanned notifications that failed to publish",
		},
	)
)
