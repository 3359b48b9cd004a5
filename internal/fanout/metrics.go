package fanout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fanout_published_total",
			Help: "Position events published to the fan-out bus",
		},
		[]string{"bus"},
	)

	DroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fanout_dropped_total",
			Help: "Position events dropped for slow subscribers",
		},
		[]string{"bus"},
	)

	Subscriptions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fanout_subscriptions",
			Help: "Open fan-out subscriptions",
		},
		[]string{"bus"},
	)
)
