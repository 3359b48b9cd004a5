package tracking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"tracking/internal/entities"
	"tracking/pkg/logger"
)

const degradedLogInterval = 30 * time.Second

type Config struct {
	IdempotencyTTL time.Duration
	PublishTimeout time.Duration
}

type Service struct {
	store      PositionStore
	guard      IdempotencyGuard
	publisher  Publisher
	trigger    ReplanTrigger
	dispatcher Dispatcher
	log        logger.Logger
	degraded   *logger.Throttled
	cfg        Config
	now        func() time.Time
}

func New(
	log logger.Logger,
	store PositionStore,
	guard IdempotencyGuard,
	publisher Publisher,
	trigger ReplanTrigger,
	dispatcher Dispatcher,
	cfg Config,
) *Service {
	serviceLog := log.With(logger.NewField("service", "tracking"))

	return &Service{
		store:      store,
		guard:      guard,
		publisher:  publisher,
		trigger:    trigger,
		dispatcher: dispatcher,
		log:        serviceLog,
		degraded:   logger.NewThrottled(serviceLog, degradedLogInterval),
		cfg:        cfg,
		now:        time.Now,
	}
}

// Ingest принимает пинг водителя.
// Синхронно: проверка lease и запись в хранилище. Publish ограничен таймаутом, ошибки глотаются.
// Перепланирование уходит в dispatcher и на ответ не влияет.
func (s *Service) Ingest(ctx context.Context, in entities.PositionIngest) (*entities.IngestAck, error) {
	if err := validateIngest(in); err != nil {
		IngestTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	token := strings.TrimSpace(in.IdempotencyToken)
	if token != "" {
		acquired, err := s.guard.TryAcquire(ctx, in.OrderID, token, s.cfg.IdempotencyTTL)
		if err != nil {
			// guard недоступен - принимаем как новый, возможен дубль
			GuardDegradedTotal.Inc()
			s.degraded.Warn("idempotency guard unavailable, ingesting without dedup",
				logger.NewField("order", in.OrderID),
				logger.NewField("error", err),
			)
			acquired = true
		}
		if !acquired {
			IngestTotal.WithLabelValues("duplicate").Inc()
			return &entities.IngestAck{OK: true, Duplicate: true}, nil
		}
	}

	recordedAt := s.now().UTC()
	if in.RecordedAt != nil {
		recordedAt = in.RecordedAt.UTC()
	}

	report := entities.PositionReport{
		ID:         uuid.NewString(),
		OrderID:    in.OrderID,
		DriverID:   in.DriverID,
		Latitude:   *in.Latitude,
		Longitude:  *in.Longitude,
		Speed:      in.Speed,
		Heading:    in.Heading,
		RecordedAt: recordedAt,
	}

	stored, err := s.store.Append(ctx, report)
	if err != nil {
		IngestTotal.WithLabelValues("failed").Inc()
		if token != "" {
			s.releaseLease(ctx, in.OrderID, token)
		}
		return nil, fmt.Errorf("append position: %w", err)
	}
	IngestTotal.WithLabelValues("stored").Inc()

	s.publish(ctx, *stored)
	s.dispatchReplan(ctx, *stored)

	return &entities.IngestAck{
		OK:       true,
		ID:       stored.ID,
		Sequence: stored.IngestSequence,
	}, nil
}

// ListRecent - история по заказу, новые первыми. Пустой результат не ошибка.
func (s *Service) ListRecent(ctx context.Context, orderID string, limit int) ([]entities.PositionReport, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if limit <= 0 {
		return []entities.PositionReport{}, nil
	}

	reports, err := s.store.ListRecent(ctx, orderID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent positions: %w", err)
	}
	return reports, nil
}

func (s *Service) publish(ctx context.Context, report entities.PositionReport) {
	// отмена запроса не должна обрывать publish уже сохраненной точки
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.PublishTimeout)
	defer cancel()

	if err := s.publisher.Publish(publishCtx, report.OrderID, report); err != nil {
		PublishFailedTotal.Inc()
		s.degraded.Warn("fan-out publish failed",
			logger.NewField("order", report.OrderID),
			logger.NewField("error", err),
		)
	}
}

func (s *Service) dispatchReplan(ctx context.Context, report entities.PositionReport) {
	err := s.dispatcher.Go(ctx, "replan on position", func(ctx context.Context) error {
		return s.trigger.OnPosition(ctx, report)
	})
	if err != nil {
		s.log.Warn("replan dispatch rejected",
			logger.NewField("driver", report.DriverID),
			logger.NewField("error", err),
		)
	}
}

func (s *Service) releaseLease(ctx context.Context, orderID, token string) {
	err := s.guard.Release(context.WithoutCancel(ctx), orderID, token)
	if err != nil && !errors.Is(err, context.Canceled) {
		s.degraded.Warn("failed to release idempotency lease",
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		)
	}
}
