//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"
	"time"

	"tracking/internal/entities"
)

type PositionStore interface {
	Append(ctx context.Context, report entities.PositionReport) (*entities.PositionReport, error)
	ListRecent(ctx context.Context, orderID string, limit int) ([]entities.PositionReport, error)
}

type IdempotencyGuard interface {
	TryAcquire(ctx context.Context, orderID, token string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, orderID, token string) error
}

type Publisher interface {
	Publish(ctx context.Context, orderID string, report entities.PositionReport) error
}

type ReplanTrigger interface {
	OnPosition(ctx context.Context, report entities.PositionReport) error
}

type Dispatcher interface {
	Go(ctx context.Context, name string, fn func(ctx context.Context) error) error
}
