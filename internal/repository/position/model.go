package position

import "time"

type PositionDB struct {
	ID             string
	OrderID        string
	DriverID       string
	Latitude       float64
	Longitude      float64
	Speed          *float64
	Heading        *float64
	RecordedAt     time.Time
	IngestSequence int64
}
