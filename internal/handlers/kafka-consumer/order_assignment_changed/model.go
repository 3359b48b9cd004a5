package order_assignment_changed

import (
	"time"

	"tracking/internal/entities"
)

type locationEvent struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type assignmentChangedEvent struct {
	OrderID    string         `json:"order_id"`
	DriverID   string         `json:"driver_id"`
	Status     string         `json:"status"`
	Pickup     *locationEvent `json:"pickup,omitempty"`
	Dropoff    *locationEvent `json:"dropoff,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func (e assignmentChangedEvent) toDomain() entities.AssignmentEvent {
	return entities.AssignmentEvent{
		OrderID:    e.OrderID,
		DriverID:   e.DriverID,
		Status:     entities.AssignmentStatusType(e.Status),
		Pickup:     e.Pickup.toDomain(),
		Dropoff:    e.Dropoff.toDomain(),
		OccurredAt: e.OccurredAt,
	}
}

func (l *locationEvent) toDomain() *entities.Location {
	if l == nil {
		return nil
	}
	return &entities.Location{Latitude: l.Lat, Longitude: l.Lng}
}
