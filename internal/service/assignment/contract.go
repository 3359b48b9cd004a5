//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"tracking/internal/entities"
)

type AssignmentStore interface {
	// Upsert возвращает прежнего водителя заказа или пустую строку.
	Upsert(ctx context.Context, a entities.Assignment) (string, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.AssignmentStatusType) (*entities.Assignment, error)
}

type Replanner interface {
	Replan(ctx context.Context, req entities.ReplanRequest) (*entities.RoutePlan, error)
}

type (
	ExecuteFn      func(ctx context.Context, event entities.AssignmentEvent) (*entities.Assignment, error)
	HandlerFactory interface {
		GetHandler(status entities.AssignmentStatusType) (ExecuteFn, error)
	}
)
