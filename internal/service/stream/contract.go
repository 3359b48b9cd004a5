//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stream_test
package stream

import (
	"context"
	"time"

	"tracking/internal/entities"
	"tracking/internal/fanout"
)

type Subscriber interface {
	Subscribe(ctx context.Context, orderID string) (fanout.Subscription, error)
}

type HistoryReader interface {
	ListRecent(ctx context.Context, orderID string, limit int) ([]entities.PositionReport, error)
}

// Sink - транспорт зрителя (SSE). Вызовы сериализуются менеджером.
// Open вызывается один раз после успешной подписки, до первого события.
type Sink interface {
	Open() error
	SendPosition(report entities.PositionReport) error
	SendHeartbeat(serverTime time.Time) error
}
