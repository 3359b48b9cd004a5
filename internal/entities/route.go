package entities

import "time"

type RouteProvider string

const (
	ProviderOptimizer RouteProvider = "optimizer"
	ProviderFallback  RouteProvider = "fallback"
)

func (p RouteProvider) String() string {
	return string(p)
}

type StopKind string

const (
	StopPickup  StopKind = "pickup"
	StopDropoff StopKind = "dropoff"
)

func (k StopKind) String() string {
	return string(k)
}

type Stop struct {
	Latitude   float64
	Longitude  float64
	OrderID    string   // пусто, если стоп не привязан к заказу
	Kind       StopKind // пусто, если тип неизвестен
	ETASeconds *int64
}

func (s Stop) Location() Location {
	return Location{Latitude: s.Latitude, Longitude: s.Longitude}
}

// RoutePlan - иммутабельная запись. Актуальным считается последний по CreatedAt.
type RoutePlan struct {
	ID              string
	DriverID        string
	OrderID         string
	Stops           []Stop
	TotalDistanceKm float64
	Provider        RouteProvider
	RawResponse     []byte
	CreatedAt       time.Time
}

type OptimizeRequest struct {
	DriverID string
	Start    *Location
	Stops    []Stop
}

type OptimizedRoute struct {
	Stops           []Stop
	TotalDistanceKm float64
	Provider        RouteProvider
	RawResponse     []byte
}

type ReplanTriggerType string

const (
	TriggerAssignment ReplanTriggerType = "assignment"
	TriggerDeviation  ReplanTriggerType = "deviation"
	TriggerManual     ReplanTriggerType = "manual"
)

func (t ReplanTriggerType) String() string {
	return string(t)
}

type ReplanRequest struct {
	DriverID string
	OrderID  string
	Trigger  ReplanTriggerType
}
