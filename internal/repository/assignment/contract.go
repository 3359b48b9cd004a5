package assignment

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"tracking/internal/entities"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// PositionLocator - последняя точка водителя, источник стартовой позиции маршрута.
type PositionLocator interface {
	LatestForDriver(ctx context.Context, driverID string) (*entities.PositionReport, error)
}
