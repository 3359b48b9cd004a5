package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	scopeGlobal = "global"
	scopeClient = "client"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Requests rejected by the rate limiter, by route and limiter scope",
	},
	[]string{"route", "scope"},
)

var ClientLimiters = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "rate_limit_clients",
		Help: "Per-client limiters currently tracked",
	},
)
