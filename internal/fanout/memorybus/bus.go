package memorybus

import (
	"context"
	"sync"

	"tracking/internal/entities"
	"tracking/internal/fanout"
)

const (
	busLabel      = "memory"
	defaultBuffer = 64
)

// Bus - in-process шина для одного инстанса сервиса.
// Publish держит RLock, Subscribe/Close - Lock, поэтому канал не закрывается во время отправки.
type Bus struct {
	mu     sync.RWMutex
	topics map[string]map[*subscription]struct{}
	buffer int
	closed bool
}

func New(buffer int) *Bus {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Bus{
		topics: make(map[string]map[*subscription]struct{}),
		buffer: buffer,
	}
}

func (b *Bus) Publish(_ context.Context, orderID string, report entities.PositionReport) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return fanout.ErrBusClosed
	}

	for sub := range b.topics[orderID] {
		select {
		case sub.events <- report:
		default:
			fanout.DroppedTotal.WithLabelValues(busLabel).Inc()
		}
	}
	fanout.PublishedTotal.WithLabelValues(busLabel).Inc()
	return nil
}

func (b *Bus) Subscribe(_ context.Context, orderID string) (fanout.Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, fanout.ErrBusClosed
	}

	sub := &subscription{
		bus:     b,
		orderID: orderID,
		events:  make(chan entities.PositionReport, b.buffer),
	}

	subs, ok := b.topics[orderID]
	if !ok {
		subs = make(map[*subscription]struct{})
		b.topics[orderID] = subs
	}
	subs[sub] = struct{}{}
	fanout.Subscriptions.WithLabelValues(busLabel).Inc()

	return sub, nil
}

func (b *Bus) SubscriberCount(_ context.Context, orderID string) (int64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return int64(len(b.topics[orderID])), nil
}

// Close закрывает все подписки. Повторный вызов безопасен.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for orderID, subs := range b.topics {
		for sub := range subs {
			close(sub.events)
			fanout.Subscriptions.WithLabelValues(busLabel).Dec()
		}
		delete(b.topics, orderID)
	}
	return nil
}

func (b *Bus) remove(sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.topics[sub.orderID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		// уже закрыта через Bus.Close
		return
	}

	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.topics, sub.orderID)
	}
	close(sub.events)
	fanout.Subscriptions.WithLabelValues(busLabel).Dec()
}

type subscription struct {
	bus     *Bus
	orderID string
	events  chan entities.PositionReport
	once    sync.Once
}

func (s *subscription) Events() <-chan entities.PositionReport {
	return s.events
}

func (s *subscription) Close() error {
	s.once.Do(func() {
		s.bus.remove(s)
	})
	return nil
}
