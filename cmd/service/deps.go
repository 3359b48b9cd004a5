package main

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	application "tracking/internal/app"
	"tracking/internal/fanout/memorybus"
	"tracking/internal/fanout/redisbus"
	"tracking/internal/gateway/kafka/notification"
	"tracking/internal/handlers/rest/healthcheck_head"
	"tracking/internal/idempotency/memoryguard"
	"tracking/internal/idempotency/redisguard"
	"tracking/internal/pkg/config"
	"tracking/internal/pkg/kafka"
	"tracking/internal/pkg/postgres"
	"tracking/internal/pkg/redis"
	"tracking/pkg/logger"
)

const subscriptionBuffer = 64

// dependencies - выбранные по конфигу хранилища и инфраструктура.
type dependencies struct {
	stores  application.Stores
	infra   application.Infra
	pingers map[string]healthcheck_head.Pinger
	closers []func()
}

func (d *dependencies) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

func initDependencies(ctx context.Context, log logger.Logger, cfg *config.Config) (*dependencies, error) {
	deps := &dependencies{
		pingers: make(map[string]healthcheck_head.Pinger),
	}

	if err := initStorage(ctx, log, cfg, deps); err != nil {
		deps.close()
		return nil, err
	}
	if err := initFanout(ctx, log, cfg, deps); err != nil {
		deps.close()
		return nil, err
	}
	if err := initNotifications(ctx, log, cfg, deps); err != nil {
		deps.close()
		return nil, err
	}
	return deps, nil
}

func initStorage(ctx context.Context, log logger.Logger, cfg *config.Config, deps *dependencies) error {
	if cfg.Storage.Driver != config.StoragePostgres {
		log.Warn("in-memory storage, data is lost on restart")
		deps.stores = application.NewMemoryStores()
		return nil
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	deps.closers = append(deps.closers, pool.Close)
	deps.pingers["postgres"] = pool
	prometheus.MustRegister(postgres.NewPoolCollector(pool))

	if cfg.Storage.Migrate {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	deps.stores = application.NewPostgresStores(pool, pgxv5.DefaultCtxGetter)
	return nil
}

func initFanout(ctx context.Context, log logger.Logger, cfg *config.Config, deps *dependencies) error {
	if !cfg.Redis.Enabled() {
		log.Warn("redis is not configured, fan-out and idempotency are process-local")

		bus := memorybus.New(subscriptionBuffer)
		guard := memoryguard.New()
		deps.closers = append(deps.closers, func() {
			if err := bus.Close(); err != nil {
				log.Error("failed to close memory bus", logger.NewField("error", err))
			}
		})
		deps.infra.Bus = bus
		deps.infra.Guard = guard
		deps.infra.Sweeper = guard
		return nil
	}

	client, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	deps.closers = append(deps.closers, func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close redis client", logger.NewField("error", err))
		}
	})
	deps.pingers["redis"] = redisPinger(client)

	deps.infra.Bus = redisbus.New(client, log, subscriptionBuffer)
	deps.infra.Guard = redisguard.New(client)
	return nil
}

func initNotifications(ctx context.Context, log logger.Logger, cfg *config.Config, deps *dependencies) error {
	if len(cfg.Kafka.BrokerList()) == 0 {
		log.Warn("kafka is not configured, route notifications are disabled")
		deps.infra.Sink = notification.Noop{}
		return nil
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	deps.closers = append(deps.closers, func() {
		if err := producer.Close(); err != nil {
			log.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	})

	deps.infra.Sink = notification.New(log, producer, cfg.Kafka.Topics.RouteReplanned)
	return nil
}

func redisPinger(client *goredis.Client) healthcheck_head.PingFunc {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
