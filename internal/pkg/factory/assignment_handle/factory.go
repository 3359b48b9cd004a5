package assignment_handle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tracking/internal/entities"
	"tracking/internal/service/assignment"
	"tracking/internal/service/route"
)

type StatusHandlerFactory struct {
	store     assignment.AssignmentStore
	replanner assignment.Replanner
	now       func() time.Time
}

func NewStatusHandlerFactory(store assignment.AssignmentStore, replanner assignment.Replanner) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		store:     store,
		replanner: replanner,
		now:       time.Now,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.AssignmentStatusType) (assignment.ExecuteFn, error) {
	switch status {
	case entities.AssignmentAssigned:
		return f.assignedHandler, nil
	case entities.AssignmentPickedUp,
		entities.AssignmentDelivered,
		entities.AssignmentCancelled,
		entities.AssignmentUnassigned:
		return f.statusChangedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", assignment.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) assignedHandler(ctx context.Context, event entities.AssignmentEvent) (*entities.Assignment, error) {
	if event.DriverID == "" || event.Pickup == nil || event.Dropoff == nil {
		return nil, assignment.ErrMissingRequiredFields
	}

	assignedAt := event.OccurredAt
	if assignedAt.IsZero() {
		assignedAt = f.now()
	}

	a := entities.Assignment{
		OrderID:    event.OrderID,
		DriverID:   event.DriverID,
		Pickup:     *event.Pickup,
		Dropoff:    *event.Dropoff,
		Status:     entities.AssignmentAssigned,
		AssignedAt: assignedAt.UTC(),
	}

	previousDriverID, err := f.store.Upsert(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("upsert assignment: %w", err)
	}

	if err := f.replan(ctx, a.DriverID, a.OrderID); err != nil {
		return nil, err
	}

	// заказ ушел от другого водителя, его маршрут тоже устарел
	if previousDriverID != "" && previousDriverID != a.DriverID {
		if err := f.replan(ctx, previousDriverID, ""); err != nil {
			return nil, err
		}
	}

	return &a, nil
}

func (f *StatusHandlerFactory) statusChangedHandler(ctx context.Context, event entities.AssignmentEvent) (*entities.Assignment, error) {
	a, err := f.store.UpdateStatus(ctx, event.OrderID, event.Status)
	if err != nil {
		return nil, fmt.Errorf("update assignment status: %w", err)
	}

	if err := f.replan(ctx, a.DriverID, a.OrderID); err != nil {
		return nil, err
	}

	return a, nil
}

// replan без открытых стопов - нормальный исход для последнего закрытого заказа
func (f *StatusHandlerFactory) replan(ctx context.Context, driverID, orderID string) error {
	_, err := f.replanner.Replan(ctx, entities.ReplanRequest{
		DriverID: driverID,
		OrderID:  orderID,
		Trigger:  entities.TriggerAssignment,
	})
	if err != nil && !errors.Is(err, route.ErrNoOpenStops) {
		return fmt.Errorf("replan driver %s: %w", driverID, err)
	}
	return nil
}
