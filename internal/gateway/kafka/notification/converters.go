package notification

import "tracking/internal/entities"

func toMessage(plan entities.RoutePlan, trigger entities.ReplanTriggerType) routeReplannedMessage {
	stops := make([]stopMessage, 0, len(plan.Stops))
	for _, stop := range plan.Stops {
		stops = append(stops, stopMessage{
			Lat:        stop.Latitude,
			Lng:        stop.Longitude,
			OrderID:    stop.OrderID,
			Kind:       stop.Kind.String(),
			ETASeconds: stop.ETASeconds,
		})
	}

	return routeReplannedMessage{
		PlanID:          plan.ID,
		DriverID:        plan.DriverID,
		OrderID:         plan.OrderID,
		Trigger:         trigger.String(),
		Provider:        plan.Provider.String(),
		TotalDistanceKm: plan.TotalDistanceKm,
		Stops:           stops,
		CreatedAt:       plan.CreatedAt.UTC(),
	}
}
