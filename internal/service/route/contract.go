//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	"tracking/internal/entities"
)

// OpenStopsProvider - read model назначений заказов на водителя.
type OpenStopsProvider interface {
	GetOpenStopsForDriver(ctx context.Context, driverID string) ([]entities.Stop, error)
	// GetDriverLocation возвращает ErrDriverLocationUnknown, если пингов еще не было.
	GetDriverLocation(ctx context.Context, driverID string) (*entities.Location, error)
}

// Optimizer никогда не возвращает ошибку, в худшем случае это fallback маршрут.
type Optimizer interface {
	Optimize(ctx context.Context, req entities.OptimizeRequest) entities.OptimizedRoute
}

type PlanStore interface {
	Save(ctx context.Context, plan entities.RoutePlan) error
	LatestForDriver(ctx context.Context, driverID string) (*entities.RoutePlan, error)
	GetByID(ctx context.Context, id string) (*entities.RoutePlan, error)
}

type NotificationSink interface {
	RouteReplanned(ctx context.Context, plan entities.RoutePlan, trigger entities.ReplanTriggerType) error
}

type DeviationDetector interface {
	Evaluate(report entities.PositionReport, plan *entities.RoutePlan) (float64, bool)
	ShouldReplan(report entities.PositionReport, plan *entities.RoutePlan) bool
}
