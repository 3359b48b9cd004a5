package position

import "tracking/internal/entities"

func ToDomain(p *PositionDB) *entities.PositionReport {
	if p == nil {
		return nil
	}

	return &entities.PositionReport{
		ID:             p.ID,
		OrderID:        p.OrderID,
		DriverID:       p.DriverID,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		Speed:          p.Speed,
		Heading:        p.Heading,
		RecordedAt:     p.RecordedAt.UTC(),
		IngestSequence: p.IngestSequence,
	}
}

func FromDomain(r *entities.PositionReport) *PositionDB {
	if r == nil {
		return nil
	}

	return &PositionDB{
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

func ToDomainList(positionsDB []PositionDB) []entities.PositionReport {
	if len(positionsDB) == 0 {
		return []entities.PositionReport{}
	}

	result := make([]entities.PositionReport, len(positionsDB))
	for i := range positionsDB {
		result[i] = *ToDomain(&positionsDB[i])
	}
	return result
}
