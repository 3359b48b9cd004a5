//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=positions_get_test
package positions_get

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
	ListRecent(ctx context.Context, orderID string, limit int) ([]entities.PositionReport, error)
}
