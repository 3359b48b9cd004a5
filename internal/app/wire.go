//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"

	"github.com/google/wire"
	"tracking/internal/gateway/http/optimizer"
	"tracking/internal/handlers/tasks/lease_sweep"
	"tracking/internal/pkg/config"
	"tracking/internal/pkg/factory/assignment_handle"
	assignmentService "tracking/internal/service/assignment"
	"tracking/internal/service/deviation"
	routeService "tracking/internal/service/route"
	streamService "tracking/internal/service/stream"
	trackingService "tracking/internal/service/tracking"
	"tracking/pkg/background"
	"tracking/pkg/logger"
)

type Application struct {
	Tracking          *trackingService.Service
	Route             *routeService.Service
	Stream            *streamService.Manager
	Dispatcher        *background.Dispatcher
	BackgroundWorkers *background.Worker
}

var routeSet = wire.NewSet(
	wire.FieldsOf(new(Stores), "Plans", "Assignments"),
	wire.FieldsOf(new(Infra), "Sink"),

	provideDetector,
	provideFallback,
	provideHTTPClient,
	provideOptimizer,
	routeService.New,

	wire.Bind(new(routeService.OpenStopsProvider), new(AssignmentStore)),
	wire.Bind(new(routeService.Optimizer), new(*optimizer.Gateway)),
	wire.Bind(new(routeService.DeviationDetector), new(*deviation.Detector)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	stores Stores,
	infra Infra,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		routeSet,
		wire.FieldsOf(new(Stores), "Positions"),
		wire.FieldsOf(new(Infra), "Guard", "Bus", "Sweeper"),

		provideDispatcher,
		provideTrackingService,
		provideStreamService,

		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	AssignmentService *assignmentService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-assignment)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	stores Stores,
	infra Infra,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		routeSet,

		assignment_handle.NewStatusHandlerFactory,
		assignmentService.New,

		wire.Bind(new(assignmentService.AssignmentStore), new(AssignmentStore)),
		wire.Bind(new(assignmentService.Replanner), new(*routeService.Service)),
		wire.Bind(new(assignmentService.HandlerFactory), new(*assignment_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideDetector(cfg *config.Config) *deviation.Detector {
	return deviation.New(cfg.Route.DeviationThresholdKm)
}

func provideFallback(cfg *config.Config) *optimizer.Fallback {
	return optimizer.NewFallback(cfg.Route.FallbackSpeedKmh, cfg.Route.FallbackDwell)
}

func provideHTTPClient() *http.Client {
	return &http.Client{}
}

func provideOptimizer(log logger.Logger, client *http.Client, cfg *config.Config, fallback *optimizer.Fallback) *optimizer.Gateway {
	return optimizer.New(log, client, optimizer.Config{
		BaseURL: cfg.Optimizer.BaseURL,
		APIKey:  cfg.Optimizer.APIKey,
		Profile: cfg.Optimizer.Profile,
		Timeout: cfg.Optimizer.Timeout,
		Dwell:   cfg.Route.FallbackDwell,
	}, fallback)
}

func provideDispatcher(log logger.Logger, cfg *config.Config) *background.Dispatcher {
	return background.NewDispatcher(log, cfg.Tracking.ReplanTimeout, cfg.Tracking.ReplanConcurrency)
}

func provideTrackingService(
	log logger.Logger,
	positions PositionStore,
	guard trackingService.IdempotencyGuard,
	bus Bus,
	route *routeService.Service,
	dispatcher *background.Dispatcher,
	cfg *config.Config,
) *trackingService.Service {
	return trackingService.New(log, positions, guard, bus, route, dispatcher, trackingService.Config{
		IdempotencyTTL: cfg.Tracking.IdempotencyTTL,
		PublishTimeout: cfg.Tracking.PublishTimeout,
	})
}

func provideStreamService(log logger.Logger, bus Bus, positions PositionStore, cfg *config.Config) *streamService.Manager {
	return streamService.New(log, bus, positions, cfg.Tracking.StreamHeartbeat)
}

func provideTaskList(log logger.Logger, sweeper lease_sweep.Sweeper, cfg *config.Config) []background.Task {
	if sweeper == nil {
		return nil
	}
	return []background.Task{
		lease_sweep.NewLeaseSweep(log, sweeper, cfg.Tasks.LeaseSweepInterval),
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
