package dto

import "time"

type PositionCreate struct {
	DriverID       string     `json:"driverId"`
	Lat            *float64   `json:"lat"`
	Lng            *float64   `json:"lng"`
	Speed          *float64   `json:"speed,omitempty"`
	Heading        *float64   `json:"heading,omitempty"`
	Ts             *time.Time `json:"ts,omitempty"`
	IdempotencyKey string     `json:"idempotencyKey,omitempty"`
}

type PositionCreateResponse struct {
	OK        bool   `json:"ok"`
	ID        string `json:"id"`
	Seq       int64  `json:"seq,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

type Position struct {
	ID       string    `json:"id"`
	OrderID  string    `json:"orderId"`
	DriverID string    `json:"driverId"`
	Lat      float64   `json:"lat"`
	Lng      float64   `json:"lng"`
	Speed    *float64  `json:"speed,omitempty"`
	Heading  *float64  `json:"heading,omitempty"`
	Ts       time.Time `json:"ts"`
	Seq      int64     `json:"seq"`
}

type PositionList struct {
	OrderID   string     `json:"orderId"`
	Positions []Position `json:"positions"`
}

type Heartbeat struct {
	ServerTime string `json:"serverTime"`
}

type Stop struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	OrderID    string  `json:"orderId,omitempty"`
	Kind       string  `json:"kind,omitempty"`
	ETASeconds *int64  `json:"etaSeconds,omitempty"`
}

type RoutePlan struct {
	ID              string    `json:"id"`
	DriverID        string    `json:"driverId"`
	OrderID         string    `json:"orderId,omitempty"`
	Stops           []Stop    `json:"stops"`
	TotalDistanceKm float64   `json:"totalDistanceKm"`
	Provider        string    `json:"provider"`
	CreatedAt       time.Time `json:"createdAt"`
}

// DriverRoute: Plan == nil сериализуется как null.
type DriverRoute struct {
	DriverID string     `json:"driverId"`
	Plan     *RoutePlan `json:"plan"`
}

type ReplanRequest struct {
	OrderID string `json:"orderId,omitempty"`
}
