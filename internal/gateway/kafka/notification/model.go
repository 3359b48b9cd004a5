package notification

import "time"

type routeReplannedMessage struct {
	PlanID          string        `json:"plan_id"`
	DriverID        string        `json:"driver_id"`
	OrderID         string        `json:"order_id,omitempty"`
	Trigger         string        `json:"trigger"`
	Provider        string        `json:"provider"`
	TotalDistanceKm float64       `json:"total_distance_km"`
	Stops           []stopMessage `json:"stops"`
	CreatedAt       time.Time     `json:"created_at"`
}

type stopMessage struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	OrderID    string  `json:"order_id,omitempty"`
	Kind       string  `json:"kind,omitempty"`
	ETASeconds *int64  `json:"eta_seconds,omitempty"`
}
