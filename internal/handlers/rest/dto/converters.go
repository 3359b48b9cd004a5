package dto

import (
	"time"

	"tracking/internal/entities"
)

func ToPositionIngest(orderID string, in PositionCreate, headerKey string) entities.PositionIngest {
	token := in.IdempotencyKey
	if token == "" {
		token = headerKey
	}

	return entities.PositionIngest{
		OrderID:          orderID,
		DriverID:         in.DriverID,
		Latitude:         in.Lat,
		Longitude:        in.Lng,
		Speed:            in.Speed,
		Heading:          in.Heading,
		RecordedAt:       in.Ts,
		IdempotencyToken: token,
	}
}

func FromIngestAck(ack entities.IngestAck) PositionCreateResponse {
	return PositionCreateResponse{
		OK:        ack.OK,
		ID:        ack.ID,
		Seq:       ack.Sequence,
		Duplicate: ack.Duplicate,
	}
}

func FromPosition(p entities.PositionReport) Position {
	return Position{
		ID:       p.ID,
		OrderID:  p.OrderID,
		DriverID: p.DriverID,
		Lat:      p.Latitude,
		Lng:      p.Longitude,
		Speed:    p.Speed,
		Heading:  p.Heading,
		Ts:       p.RecordedAt.UTC(),
		Seq:      p.IngestSequence,
	}
}

func FromPositionList(orderID string, reports []entities.PositionReport) PositionList {
	positions := make([]Position, 0, len(reports))
	for _, p := range reports {
		positions = append(positions, FromPosition(p))
	}
	return PositionList{OrderID: orderID, Positions: positions}
}

func FromHeartbeat(serverTime time.Time) Heartbeat {
	return Heartbeat{ServerTime: serverTime.UTC().Format(time.RFC3339Nano)}
}

func FromRoutePlan(plan *entities.RoutePlan) *RoutePlan {
	if plan == nil {
		return nil
	}

	stops := make([]Stop, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		stops = append(stops, Stop{
			Lat:        s.Latitude,
			Lng:        s.Longitude,
			OrderID:    s.OrderID,
			Kind:       s.Kind.String(),
			ETASeconds: s.ETASeconds,
		})
	}

	return &RoutePlan{
		ID:              plan.ID,
		DriverID:        plan.DriverID,
		OrderID:         plan.OrderID,
		Stops:           stops,
		TotalDistanceKm: plan.TotalDistanceKm,
		Provider:        plan.Provider.String(),
		CreatedAt:       plan.CreatedAt.UTC(),
	}
}
