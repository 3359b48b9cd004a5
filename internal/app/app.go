package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"tracking/internal/entities"
	"tracking/internal/handlers/tasks/lease_sweep"
	"tracking/internal/repository/assignment"
	"tracking/internal/repository/memory"
	"tracking/internal/repository/position"
	"tracking/internal/repository/routeplan"
	assignmentService "tracking/internal/service/assignment"
	routeService "tracking/internal/service/route"
	streamService "tracking/internal/service/stream"
	trackingService "tracking/internal/service/tracking"
	"tracking/pkg/querier"
	"tracking/pkg/tx"
)

type PositionStore interface {
	trackingService.PositionStore
	LatestForDriver(ctx context.Context, driverID string) (*entities.PositionReport, error)
}

type AssignmentStore interface {
	routeService.OpenStopsProvider
	assignmentService.AssignmentStore
}

type Bus interface {
	trackingService.Publisher
	streamService.Subscriber
}

// Stores - хранилища выбранного драйвера (memory или postgres).
type Stores struct {
	Positions   PositionStore
	Plans       routeService.PlanStore
	Assignments AssignmentStore
}

// Infra - опциональные внешние зависимости, собираются в main по конфигу.
type Infra struct {
	Guard trackingService.IdempotencyGuard
	Bus   Bus
	Sink  routeService.NotificationSink
	// Sweeper nil, если lease истекают на стороне redis.
	Sweeper lease_sweep.Sweeper
}

func NewMemoryStores() Stores {
	positions := memory.NewPositionStore()

	return Stores{
		Positions:   positions,
		Plans:       memory.NewPlanStore(),
		Assignments: memory.NewAssignmentStore(positions),
	}
}

func NewPostgresStores(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) Stores {
	q := querier.New(pool, getter)
	txManager := tx.New(pool)
	positions := position.New(q)

	return Stores{
		Positions:   positions,
		Plans:       routeplan.New(q, txManager),
		Assignments: assignment.New(q, txManager, positions),
	}
}
