package memory

import (
	"context"
	"slices"
	"sync"

	"tracking/internal/entities"
	"tracking/internal/service/route"
)

type PlanStore struct {
	mu       sync.RWMutex
	plans    map[string]entities.RoutePlan
	byDriver map[string][]string // id планов в порядке вставки
}

func NewPlanStore() *PlanStore {
	return &PlanStore{
		plans:    make(map[string]entities.RoutePlan),
		byDriver: make(map[string][]string),
	}
}

func (s *PlanStore) Save(_ context.Context, plan entities.RoutePlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plans[plan.ID] = clonePlan(plan)
	s.byDriver[plan.DriverID] = append(s.byDriver[plan.DriverID], plan.ID)
	return nil
}

// LatestForDriver - максимальный CreatedAt, при равенстве побеждает более поздняя вставка.
func (s *PlanStore) LatestForDriver(_ context.Context, driverID string) (*entities.RoutePlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byDriver[driverID]
	if len(ids) == 0 {
		return nil, route.ErrPlanNotFound
	}

	latest := s.plans[ids[0]]
	for _, id := range ids[1:] {
		if plan := s.plans[id]; !plan.CreatedAt.Before(latest.CreatedAt) {
			latest = plan
		}
	}

	result := clonePlan(latest)
	return &result, nil
}

func (s *PlanStore) GetByID(_ context.Context, id string) (*entities.RoutePlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.plans[id]
	if !ok {
		return nil, route.ErrPlanNotFound
	}

	result := clonePlan(plan)
	return &result, nil
}

func clonePlan(plan entities.RoutePlan) entities.RoutePlan {
	plan.Stops = slices.Clone(plan.Stops)
	plan.RawResponse = slices.Clone(plan.RawResponse)
	return plan
}
