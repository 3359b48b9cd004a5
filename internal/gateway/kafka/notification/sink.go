package notification

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"tracking/internal/entities"
	"tracking/pkg/logger"
)

// Sink публикует route.replanned в kafka. Ключ - водитель, чтобы события одного
// водителя попадали в одну партицию по порядку.
type Sink struct {
	log      logger.Logger
	producer producer
	topic    string
}

func New(log logger.Logger, producer sarama.SyncProducer, topic string) *Sink {
	return &Sink{
		log:      log.With(logger.NewField("topic", topic)),
		producer: producer,
		topic:    topic,
	}
}

func (s *Sink) RouteReplanned(ctx context.Context, plan entities.RoutePlan, trigger entities.ReplanTriggerType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(toMessage(plan, trigger))
	if err != nil {
		return fmt.Errorf("marshal route replanned: %w", err)
	}

	partition, offset, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(plan.DriverID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("trigger"), Value: []byte(trigger.String())},
		},
	})
	if err != nil {
		return fmt.Errorf("send route replanned: %w", err)
	}

	s.log.Debug("route replanned published",
		logger.NewField("plan", plan.ID),
		logger.NewField("driver", plan.DriverID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	return nil
}

// Noop используется, когда kafka не настроена.
type Noop struct{}

func (Noop) RouteReplanned(context.Context, entities.RoutePlan, entities.ReplanTriggerType) error {
	return nil
}
