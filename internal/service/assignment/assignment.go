package assignment

import (
	"context"
	"fmt"

	"tracking/internal/entities"
)

type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

// ProcessAssignmentChange применяет событие к read model и пересчитывает маршруты затронутых водителей.
func (s *Service) ProcessAssignmentChange(ctx context.Context, event entities.AssignmentEvent) (*entities.Assignment, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	executeFn, err := s.statusFactory.GetHandler(event.Status)
	if err != nil {
		return nil, err
	}

	assignment, err := executeFn(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("process %s for order %s: %w", event.Status, event.OrderID, err)
	}

	return assignment, nil
}
