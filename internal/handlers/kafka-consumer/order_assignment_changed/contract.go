//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_assignment_changed_test
package order_assignment_changed

import (
	"context"

	"tracking/internal/entities"
	"tracking/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessAssignmentChange(ctx context.Context, event entities.AssignmentEvent) (*entities.Assignment, error)
}
