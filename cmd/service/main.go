package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	application "tracking/internal/app"
	"tracking/internal/handlers/rest/healthcheck_head"
	"tracking/internal/handlers/rest/position_post"
	"tracking/internal/handlers/rest/positions_get"
	"tracking/internal/handlers/rest/route_get"
	"tracking/internal/handlers/rest/route_plan_get"
	"tracking/internal/handlers/rest/route_replan_post"
	"tracking/internal/handlers/rest/track_stream_get"
	"tracking/internal/pkg/config"
	"tracking/internal/pkg/dotenv"
	metrics_system "tracking/internal/pkg/metrics"
	"tracking/internal/pkg/middlewares/graceful_shutdown"
	"tracking/internal/pkg/middlewares/metrics"
	"tracking/internal/pkg/middlewares/rate_limiter"
	"tracking/internal/pkg/middlewares/timeout"
	"tracking/pkg/logger"
	"tracking/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting tracking application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdownCtx и ongoingCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
		dispatchDrainPeriod = 10 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	deps, err := initDependencies(ctx, log, cfg)
	if err != nil {
		return err
	}
	defer deps.close()

	// workersCtx живет до конца run, фоновые задачи останавливаются после HTTP
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	businessApp, err := application.InitializeApplication(workersCtx, log, deps.stores, deps.infra, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(workersCtx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// streamsCtx закрывает SSE сессии в начале server.Shutdown(), иначе они держат его до shutdownPeriod.
	streamsCtx, stopStreams := context.WithCancel(context.Background())
	defer stopStreams()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, streamsCtx, log, &isShuttingDown, businessApp, deps.pingers, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second, // SSE сбрасывает дедлайн сам
		IdleTimeout:       60 * time.Second,
	}
	server.RegisterOnShutdown(stopStreams)

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
			logger.NewField("storage", string(cfg.Storage.Driver)),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()

	// пересчеты, запущенные последними пингами, со своим дедлайном
	dispatchCtx, cancelDispatch := context.WithTimeout(context.Background(), dispatchDrainPeriod)
	defer cancelDispatch()

	if dispatchErr := businessApp.Dispatcher.Shutdown(dispatchCtx); dispatchErr != nil {
		runLog.Warn("background replans did not finish", logger.NewField("error", dispatchErr))
	}

	stopWorkers()
	businessApp.BackgroundWorkers.Wait()

	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

const clientLimiterIdle = 10 * time.Minute

func initRouter(
	ongoingCtx context.Context,
	streamsCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	pingers map[string]healthcheck_head.Pinger,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(metrics.Middleware(log))

	var limiterOpts []rate_limiter.Option
	if cfg.ClientRateLimitQPS > 0 {
		clients := rate_limiter.NewClientLimiter(cfg.ClientRateLimitQPS, cfg.ClientRateLimitBurst, clientLimiterIdle)
		limiterOpts = append(limiterOpts, rate_limiter.WithClientLimiter(clients))
	}
	globalLimiter := rate.NewLimiter(rate.Limit(cfg.RateLimiterQPS), cfg.RateLimiterBurst)
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, globalLimiter, limiterOpts...))

	// таймаут запроса только для коротких роутов, стрим живет до отключения клиента
	withTimeout := timeout.Middleware(cfg.RequestTimeout)

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pingers)).Methods("HEAD")

	router.Handle("/orders/{orderId}/positions", withTimeout(position_post.New(log, app.Tracking))).Methods("POST")
	router.Handle("/orders/{orderId}/positions", withTimeout(positions_get.New(log, app.Tracking))).Methods("GET")
	withStreamClose := graceful_shutdown.StreamMiddleware(streamsCtx)
	router.Handle("/orders/{orderId}/stream", withStreamClose(track_stream_get.New(log, app.Stream))).Methods("GET")

	router.Handle("/drivers/{driverId}/route", withTimeout(route_get.New(log, app.Route))).Methods("GET")
	router.Handle("/drivers/{driverId}/route/replan", withTimeout(route_replan_post.New(log, app.Route))).Methods("POST")
	router.Handle("/route-plans/{id}", withTimeout(route_plan_get.New(log, app.Route))).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
