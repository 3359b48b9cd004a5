package order_assignment_changed

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	assignmentservice "tracking/internal/service/assignment"
	"tracking/pkg/logger"
)

type Handler struct {
	assignmentService        Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, assignmentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		assignmentService:        assignmentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.assignment.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.assignment.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без коммита,
// чтобы сообщение обработалось заново.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event assignmentChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.assignment.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("driver", event.DriverID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.assignment.changed processing")

	assignment, err := h.assignmentService.ProcessAssignmentChange(ctx, event.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.assignment.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, assignmentservice.ErrUndefinedStatus),
			errors.Is(err, assignmentservice.ErrMissingRequiredFields),
			errors.Is(err, assignmentservice.ErrInvalidOrderID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.assignment.changed handler invalid event")

		case errors.Is(err, assignmentservice.ErrAssignmentNotFound),
			errors.Is(err, assignmentservice.ErrAssignmentClosed):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.assignment.changed handler event does not match read model")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.assignment.changed handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("order", assignment.OrderID),
		logger.NewField("driver", assignment.DriverID),
		logger.NewField("current_status", assignment.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("order.assignment.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
