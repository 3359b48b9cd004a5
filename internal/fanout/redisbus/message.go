package redisbus

import (
	"time"

	"tracking/internal/entities"
)

type positionMessage struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id"`
	DriverID       string    `json:"driver_id"`
	Latitude       float64   `json:"lat"`
	Longitude      float64   `json:"lng"`
	Speed          *float64  `json:"speed,omitempty"`
	Heading        *float64  `json:"heading,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
	IngestSequence int64     `json:"seq"`
}

func toMessage(r entities.PositionReport) positionMessage {
	return positionMessage{
		ID:             r.ID,
		OrderID:        r.OrderID,
		DriverID:       r.DriverID,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Speed:          r.Speed,
		Heading:        r.Heading,
		RecordedAt:     r.RecordedAt,
		IngestSequence: r.IngestSequence,
	}
}

func (m positionMessage) toEntity() entities.PositionReport {
	return entities.PositionReport{
		ID:             m.ID,
		OrderID:        m.OrderID,
		DriverID:       m.DriverID,
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
		Speed:          m.Speed,
		Heading:        m.Heading,
		RecordedAt:     m.RecordedAt,
		IngestSequence: m.IngestSequence,
	}
}
