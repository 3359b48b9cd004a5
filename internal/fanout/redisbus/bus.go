package redisbus

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"tracking/internal/entities"
	"tracking/internal/fanout"
	"tracking/pkg/logger"
)

const (
	busLabel      = "redis"
	defaultBuffer = 64
)

// Bus рассылает позиции через Redis pub/sub, чтобы зрители на любом инстансе видели события.
type Bus struct {
	client *redis.Client
	log    logger.Logger
	buffer int
}

func New(client *redis.Client, log logger.Logger, buffer int) *Bus {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Bus{
		client: client,
		log:    log,
		buffer: buffer,
	}
}

func (b *Bus) Publish(ctx context.Context, orderID string, report entities.PositionReport) error {
	payload, err := json.Marshal(toMessage(report))
	if err != nil {
		return fmt.Errorf("marshal position: %w", err)
	}

	if err := b.client.Publish(ctx, fanout.Channel(orderID), payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}

	fanout.PublishedTotal.WithLabelValues(busLabel).Inc()
	return nil
}

// Subscribe возвращается после подтверждения подписки сервером.
func (b *Bus) Subscribe(ctx context.Context, orderID string) (fanout.Subscription, error) {
	pubsub := b.client.Subscribe(ctx, fanout.Channel(orderID))

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("redis subscribe: %w", err)
	}

	sub := &subscription{
		pubsub: pubsub,
		log:    b.log.With(logger.NewField("order_id", orderID)),
		events: make(chan entities.PositionReport, b.buffer),
	}
	fanout.Subscriptions.WithLabelValues(busLabel).Inc()

	go sub.run(pubsub.Channel())

	return sub, nil
}

func (b *Bus) SubscriberCount(ctx context.Context, orderID string) (int64, error) {
	channel := fanout.Channel(orderID)

	counts, err := b.client.PubSubNumSub(ctx, channel).Result()
	if err != nil {
		return 0, fmt.Errorf("redis numsub: %w", err)
	}
	return counts[channel], nil
}

type subscription struct {
	pubsub *redis.PubSub
	log    logger.Logger
	events chan entities.PositionReport
	once   sync.Once
}

func (s *subscription) Events() <-chan entities.PositionReport {
	return s.events
}

func (s *subscription) Close() error {
	var err error
	s.once.Do(func() {
		err = s.pubsub.Close()
		fanout.Subscriptions.WithLabelValues(busLabel).Dec()
	})
	return err
}

// run завершается, когда go-redis закрывает канал после pubsub.Close.
func (s *subscription) run(messages <-chan *redis.Message) {
	defer close(s.events)

	for msg := range messages {
		var m positionMessage
		if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
			s.log.Warn("skip malformed fan-out message", logger.NewField("error", err.Error()))
			continue
		}

		select {
		case s.events <- m.toEntity():
		default:
			fanout.DroppedTotal.WithLabelValues(busLabel).Inc()
		}
	}
}
