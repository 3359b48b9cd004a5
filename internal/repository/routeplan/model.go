package routeplan

import "time"

type RoutePlanDB struct {
	ID              string
	DriverID        string
	OrderID         *string
	TotalDistanceKm float64
	Provider        string
	RawResponse     []byte
	CreatedAt       time.Time
}

type StopDB struct {
	Position   int
	Latitude   float64
	Longitude  float64
	OrderID    *string
	Kind       *string
	ETASeconds *int64
}
