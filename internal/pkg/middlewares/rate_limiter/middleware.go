package rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"tracking/pkg/logger"
)

const rejectBody = `{"error":"too_many_requests","message":"rate limit exceeded, retry later"}`

type Option func(*options)

type options struct {
	clients KeyLimiter
}

// WithClientLimiter включает лимит на клиента поверх общего.
func WithClientLimiter(clients KeyLimiter) Option {
	return func(o *options) {
		o.clients = clients
	}
}

// Middleware отклоняет запросы сверх общего лимита процесса и, если задан, лимита клиента.
// Клиент - метод и orderId из роута, иначе адрес без порта: зрители стрима не тратят лимит пингов.
func Middleware(log handlerLogger, limit int, global Limiter, opts ...Option) func(http.Handler) http.Handler {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := ""
			switch {
			case !global.Allow():
				scope = scopeGlobal
			case o.clients != nil && !o.clients.Allow(clientKey(r)):
				scope = scopeClient
			default:
				next.ServeHTTP(w, r)
				return
			}

			route := routeTemplate(r)
			RateLimitExceededTotal.WithLabelValues(route, scope).Inc()

			reqLog := log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("scope", scope),
				logger.NewField("remote_addr", r.RemoteAddr),
			)
			reqLog.Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(rejectBody)); err != nil {
				reqLog.Error("failed to write rate limit response", logger.NewField("error", err))
			}
		})
	}
}

func clientKey(r *http.Request) string {
	if orderID := mux.Vars(r)["orderId"]; orderID != "" {
		return r.Method + " order:" + orderID
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "addr:" + r.RemoteAddr
	}
	return "addr:" + host
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}
