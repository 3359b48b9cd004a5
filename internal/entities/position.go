package entities

import "time"

// PositionReport - принятый и сохраненный пинг водителя. После создания не изменяется.
type PositionReport struct {
	ID             string
	OrderID        string
	DriverID       string
	Latitude       float64
	Longitude      float64
	Speed          *float64
	Heading        *float64
	RecordedAt     time.Time // время с устройства
	IngestSequence int64     // строго возрастает в порядке приема
}

// PositionIngest - входные данные приема. Pointer-поля отличают "не передано" от нуля.
type PositionIngest struct {
	OrderID          string
	DriverID         string
	Latitude         *float64
	Longitude        *float64
	Speed            *float64
	Heading          *float64
	RecordedAt       *time.Time
	IdempotencyToken string
}

type IngestAck struct {
	OK        bool
	ID        string
	Sequence  int64
	Duplicate bool
}

type Location struct {
	Latitude  float64
	Longitude float64
}

// Location позиции отчета.
func (p PositionReport) Location() Location {
	return Location{Latitude: p.Latitude, Longitude: p.Longitude}
}
