package optimizer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"tracking/internal/entities"
	"tracking/pkg/logger"
	retrierconfig "tracking/pkg/retrier"
	"tracking/pkg/retrier/backoff_adapter"
)

const (
	serviceName       = "openrouteservice"
	optimizationPath  = "/optimization"
	breakerName       = "optimizer"
	maxResponseBytes  = 4 << 20
	degradedLogPeriod = 30 * time.Second

	DefaultTimeout = 3 * time.Second
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

type Config struct {
	BaseURL string
	APIKey  string
	Profile string
	Timeout time.Duration
	Dwell   time.Duration // service time на каждом стопе
}

// Gateway никогда не возвращает ошибку: любой сбой оптимизатора заменяется fallback маршрутом.
type Gateway struct {
	client   httpDoer
	retrier  retrier
	breaker  *gobreaker.CircuitBreaker[*vroomResponse]
	fallback *Fallback
	cfg      Config
	degraded *logger.Throttled
}

func New(log logger.Logger, client httpDoer, cfg Config, fallback *Fallback) *Gateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  cfg.Timeout,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
	}

	gatewayLog := log.With(logger.NewField("gateway", serviceName))

	CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	breaker := gobreaker.NewCircuitBreaker[*vroomResponse](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			gatewayLog.Info("optimizer circuit breaker state",
				logger.NewField("from", from.String()),
				logger.NewField("to", to.String()),
			)
			CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &Gateway{
		client:   client,
		retrier:  backoff_adapter.New(retryConfig),
		breaker:  breaker,
		fallback: fallback,
		cfg:      cfg,
		degraded: logger.NewThrottled(gatewayLog, degradedLogPeriod),
	}
}

func (g *Gateway) Optimize(ctx context.Context, req entities.OptimizeRequest) entities.OptimizedRoute {
	if len(req.Stops) == 0 {
		return g.fallback.Plan(req)
	}

	route, err := g.optimize(ctx, req)
	if err != nil {
		reason := fallbackReason(err)
		FallbackTotal.WithLabelValues(reason).Inc()
		if !errors.Is(err, errNoAPIKey) {
			g.degraded.Warn("optimizer unavailable, using fallback route",
				logger.NewField("driver", req.DriverID),
				logger.NewField("reason", reason),
				logger.NewField("error", err.Error()),
			)
		}
		return g.fallback.Plan(req)
	}

	return route
}

func (g *Gateway) optimize(ctx context.Context, req entities.OptimizeRequest) (entities.OptimizedRoute, error) {
	if g.cfg.APIKey == "" {
		return entities.OptimizedRoute{}, errNoAPIKey
	}

	body, index := toRequest(req, g.cfg.Profile, int64(g.cfg.Dwell.Seconds()))
	payload, err := json.Marshal(body)
	if err != nil {
		return entities.OptimizedRoute{}, fmt.Errorf("marshal optimization request: %w", err)
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	resp, err := g.breaker.Execute(func() (*vroomResponse, error) {
		var resp *vroomResponse
		err := g.executeWithMetrics(ctxWithTimeout, "optimization", func(ctx context.Context) error {
			var err error
			resp, err = g.post(ctx, payload)
			return err
		})
		if err != nil {
			return nil, err
		}

		// непригодный ответ тоже считается сбоем для breaker
		if _, err := toDomain(resp, req, index); err != nil {
			return nil, err
		}
		return resp, nil
	})
	if err != nil {
		return entities.OptimizedRoute{}, fmt.Errorf("gateway optimizer, optimize: %w", err)
	}

	return toDomain(resp, req, index)
}

func (g *Gateway) post(ctx context.Context, payload []byte) (*vroomResponse, error) {
	url := strings.TrimRight(g.cfg.BaseURL, "/") + optimizationPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", g.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(raw)),
		}
	}

	var out vroomResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedResponse, err)
	}
	out.raw = raw

	return &out, nil
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

// isRetryable: 429, 5xx и сетевые ошибки
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var he *httpStatusError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func statusLabel(err error) string {
	if err == nil {
		return "OK"
	}
	var he *httpStatusError
	if errors.As(err, &he) {
		return strconv.Itoa(he.Code)
	}
	if errors.Is(err, errMalformedResponse) {
		return "MALFORMED"
	}
	return "UNKNOWN"
}

func fallbackReason(err error) string {
	var he *httpStatusError
	var netErr net.Error
	switch {
	case errors.Is(err, errNoAPIKey):
		return "no_api_key"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &he):
		return "http_status"
	case errors.Is(err, errMalformedResponse):
		return "malformed"
	case errors.As(err, &netErr):
		return "network"
	default:
		return "unknown"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
