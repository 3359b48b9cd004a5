package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"tracking/internal/entities"
	assignmentservice "tracking/internal/service/assignment"
)

type PositionLocator interface {
	LatestForDriver(ctx context.Context, driverID string) (*entities.PositionReport, error)
}

type AssignmentStore struct {
	mu          sync.RWMutex
	assignments map[string]entities.Assignment
	positions   PositionLocator
}

func NewAssignmentStore(positions PositionLocator) *AssignmentStore {
	return &AssignmentStore{
		assignments: make(map[string]entities.Assignment),
		positions:   positions,
	}
}

func (s *AssignmentStore) Upsert(_ context.Context, a entities.Assignment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.assignments[a.OrderID]
	s.assignments[a.OrderID] = a
	return previous.DriverID, nil
}

func (s *AssignmentStore) UpdateStatus(
	_ context.Context,
	orderID string,
	status entities.AssignmentStatusType,
) (*entities.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.assignments[orderID]
	if !ok {
		return nil, assignmentservice.ErrAssignmentNotFound
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", assignmentservice.ErrAssignmentClosed, current.Status, status)
	}

	current.Status = status
	s.assignments[orderID] = current
	return &current, nil
}

func (s *AssignmentStore) GetOpenStopsForDriver(_ context.Context, driverID string) ([]entities.Stop, error) {
	s.mu.RLock()
	active := make([]entities.Assignment, 0, 2)
	for _, a := range s.assignments {
		if a.DriverID == driverID && a.Status.IsActive() {
			active = append(active, a)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(active, func(a, b entities.Assignment) int {
		if c := a.AssignedAt.Compare(b.AssignedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.OrderID, b.OrderID)
	})

	stops := make([]entities.Stop, 0, len(active)*2)
	for _, a := range active {
		stops = append(stops, a.OpenStops()...)
	}
	return stops, nil
}

func (s *AssignmentStore) GetDriverLocation(ctx context.Context, driverID string) (*entities.Location, error) {
	report, err := s.positions.LatestForDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	location := report.Location()
	return &location, nil
}
