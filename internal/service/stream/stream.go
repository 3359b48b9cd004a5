package stream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"tracking/internal/fanout"
	"tracking/pkg/logger"
)

const DefaultHeartbeat = 15 * time.Second

type Manager struct {
	log       logger.Logger
	bus       Subscriber
	history   HistoryReader
	heartbeat time.Duration
}

func New(log logger.Logger, bus Subscriber, history HistoryReader, heartbeat time.Duration) *Manager {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	return &Manager{
		log:       log,
		bus:       bus,
		history:   history,
		heartbeat: heartbeat,
	}
}

// Serve держит сессию зрителя до отмены ctx, первой ошибки записи или закрытия подписки.
// Отключение клиента и закрытие подписки не считаются ошибкой.
func (m *Manager) Serve(ctx context.Context, orderID string, sink Sink) error {
	if !isValidID(orderID) {
		return ErrInvalidOrderID
	}

	s := &session{
		sink:  sink,
		log:   m.log.With(logger.NewField("order_id", orderID)),
		state: StateConnecting,
	}

	// подписка до catch-up, иначе событие между ними потеряется
	sub, err := m.bus.Subscribe(ctx, orderID)
	if err != nil {
		return fmt.Errorf("subscribe order stream: %w", err)
	}
	defer func() {
		if err := sub.Close(); err != nil {
			s.log.Warn("close subscription", logger.NewField("error", err.Error()))
		}
	}()

	started := time.Now()
	ActiveSessions.Inc()
	defer func() {
		ActiveSessions.Dec()
		SessionDuration.Observe(time.Since(started).Seconds())
	}()

	if err := s.open(); err != nil {
		s.transit(StateClosed)
		return err
	}

	s.transit(StateCatchingUp)
	lastSeq, err := m.catchUp(ctx, orderID, s)
	if err != nil {
		s.transit(StateClosed)
		return err
	}

	s.transit(StateStreaming)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.beat(gctx, s)
	})
	g.Go(func() error {
		return forward(gctx, sub, s, lastSeq)
	})

	err = g.Wait()
	s.transit(StateClosed)

	switch {
	case errors.Is(err, errSubscriptionClosed):
		return nil
	case errors.Is(err, ErrSinkWrite):
		return err
	case ctx.Err() != nil:
		return nil
	default:
		return err
	}
}

// catchUp отправляет последнюю известную позицию. Ошибка истории не прерывает сессию.
func (m *Manager) catchUp(ctx context.Context, orderID string, s *session) (int64, error) {
	recent, err := m.history.ListRecent(ctx, orderID, 1)
	if err != nil {
		s.log.Warn("stream catch-up skipped", logger.NewField("error", err.Error()))
		return 0, nil
	}
	if len(recent) == 0 {
		return 0, nil
	}

	if err := s.sendPosition(recent[0]); err != nil {
		return 0, err
	}
	return recent[0].IngestSequence, nil
}

func (m *Manager) beat(ctx context.Context, s *session) error {
	ticker := time.NewTicker(m.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.sendHeartbeat(time.Now().UTC()); err != nil {
				return err
			}
		}
	}
}

// forward пропускает события, уже отданные при catch-up.
func forward(ctx context.Context, sub fanout.Subscription, s *session, lastSeq int64) error {
	events := sub.Events()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case report, ok := <-events:
			if !ok {
				return errSubscriptionClosed
			}
			if report.IngestSequence != 0 && report.IngestSequence <= lastSeq {
				continue
			}
			if err := s.sendPosition(report); err != nil {
				return err
			}
		}
	}
}
