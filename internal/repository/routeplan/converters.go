package routeplan

import "tracking/internal/entities"

func ToDomain(p *RoutePlanDB, stops []StopDB) *entities.RoutePlan {
	if p == nil {
		return nil
	}

	plan := &entities.RoutePlan{
		ID:              p.ID,
		DriverID:        p.DriverID,
		TotalDistanceKm: p.TotalDistanceKm,
		Provider:        entities.RouteProvider(p.Provider),
		RawResponse:     p.RawResponse,
		CreatedAt:       p.CreatedAt.UTC(),
		Stops:           make([]entities.Stop, len(stops)),
	}
	if p.OrderID != nil {
		plan.OrderID = *p.OrderID
	}

	for i, s := range stops {
		stop := entities.Stop{
			Latitude:   s.Latitude,
			Longitude:  s.Longitude,
			ETASeconds: s.ETASeconds,
		}
		if s.OrderID != nil {
			stop.OrderID = *s.OrderID
		}
		if s.Kind != nil {
			stop.Kind = entities.StopKind(*s.Kind)
		}
		plan.Stops[i] = stop
	}

	return plan
}

func FromDomain(plan *entities.RoutePlan) (*RoutePlanDB, []StopDB) {
	if plan == nil {
		return nil, nil
	}

	planDB := &RoutePlanDB{
		ID:              plan.ID,
		DriverID:        plan.DriverID,
		OrderID:         optionalString(plan.OrderID),
		TotalDistanceKm: plan.TotalDistanceKm,
		Provider:        plan.Provider.String(),
		RawResponse:     plan.RawResponse,
		CreatedAt:       plan.CreatedAt,
	}

	stops := make([]StopDB, len(plan.Stops))
	for i, s := range plan.Stops {
		stops[i] = StopDB{
			Position:   i,
			Latitude:   s.Latitude,
			Longitude:  s.Longitude,
			OrderID:    optionalString(s.OrderID),
			Kind:       optionalString(string(s.Kind)),
			ETASeconds: s.ETASeconds,
		}
	}

	return planDB, stops
}

// пустая строка хранится как NULL
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
