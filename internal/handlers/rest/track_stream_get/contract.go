//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=track_stream_get_test
package track_stream_get

import (
	"context"

	"tracking/internal/service/stream"
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
	Serve(ctx context.Context, orderID string, sink stream.Sink) error
}
