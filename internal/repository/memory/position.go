// Package memory - хранилища для STORAGE_DRIVER=memory, данные живут до рестарта процесса.
package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"tracking/internal/entities"
	"tracking/internal/service/route"
)

type orderLog struct {
	mu      sync.Mutex
	reports []entities.PositionReport
}

type PositionStore struct {
	seq atomic.Int64

	mu       sync.RWMutex
	orders   map[string]*orderLog
	byDriver map[string]entities.PositionReport
}

func NewPositionStore() *PositionStore {
	return &PositionStore{
		orders:   make(map[string]*orderLog),
		byDriver: make(map[string]entities.PositionReport),
	}
}

// Append выдает sequence под блокировкой лога заказа, поэтому лог всегда упорядочен.
func (s *PositionStore) Append(_ context.Context, report entities.PositionReport) (*entities.PositionReport, error) {
	log := s.orderLog(report.OrderID)

	log.mu.Lock()
	report.IngestSequence = s.seq.Add(1)
	log.reports = append(log.reports, report)
	log.mu.Unlock()

	s.mu.Lock()
	if latest, ok := s.byDriver[report.DriverID]; !ok || latest.IngestSequence < report.IngestSequence {
		s.byDriver[report.DriverID] = report
	}
	s.mu.Unlock()

	return &report, nil
}

func (s *PositionStore) ListRecent(_ context.Context, orderID string, limit int) ([]entities.PositionReport, error) {
	if limit <= 0 {
		return []entities.PositionReport{}, nil
	}

	s.mu.RLock()
	log, ok := s.orders[orderID]
	s.mu.RUnlock()
	if !ok {
		return []entities.PositionReport{}, nil
	}

	log.mu.Lock()
	defer log.mu.Unlock()

	n := min(limit, len(log.reports))
	result := make([]entities.PositionReport, 0, n)
	for i := len(log.reports) - 1; i >= len(log.reports)-n; i-- {
		result = append(result, log.reports[i])
	}
	return result, nil
}

func (s *PositionStore) LatestForDriver(_ context.Context, driverID string) (*entities.PositionReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.byDriver[driverID]
	if !ok {
		return nil, route.ErrDriverLocationUnknown
	}
	return &report, nil
}

func (s *PositionStore) orderLog(orderID string) *orderLog {
	s.mu.RLock()
	log, ok := s.orders[orderID]
	s.mu.RUnlock()
	if ok {
		return log
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if log, ok := s.orders[orderID]; ok {
		return log
	}
	log = &orderLog{}
	s.orders[orderID] = log
	return log
}
