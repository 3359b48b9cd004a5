package timeout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DeadlineExceededTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "http_request_deadline_exceeded_total",
		Help: "Requests whose context deadline expired before the handler returned",
	},
)
