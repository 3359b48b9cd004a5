package optimizer

import (
	"fmt"

	"tracking/internal/entities"
	"tracking/pkg/geo"
)

func toLngLat(lat, lng float64) [2]float64 {
	return [2]float64{lng, lat}
}

// toRequest собирает пары забор/доставка одного заказа в shipment, чтобы оптимизатор
// не поставил доставку раньше забора. Остальные стопы уходят как jobs.
func toRequest(req entities.OptimizeRequest, profile string, serviceSeconds int64) (vroomRequest, map[stepKey]int) {
	index := make(map[stepKey]int, len(req.Stops))
	paired := make(map[int]bool, len(req.Stops))
	out := vroomRequest{
		Vehicles: []vroomVehicle{{ID: 1, Profile: profile}},
	}
	if req.Start != nil {
		start := toLngLat(req.Start.Latitude, req.Start.Longitude)
		out.Vehicles[0].Start = &start
	}

	nextID := 1
	for i, stop := range req.Stops {
		if stop.Kind != entities.StopPickup || stop.OrderID == "" {
			continue
		}
		for j := i + 1; j < len(req.Stops); j++ {
			other := req.Stops[j]
			if paired[j] || other.Kind != entities.StopDropoff || other.OrderID != stop.OrderID {
				continue
			}

			id := nextID
			nextID++
			out.Shipments = append(out.Shipments, vroomShipment{
				Pickup: vroomShipmentStep{
					ID:       id,
					Location: toLngLat(stop.Latitude, stop.Longitude),
					Service:  serviceSeconds,
				},
				Delivery: vroomShipmentStep{
					ID:       id,
					Location: toLngLat(other.Latitude, other.Longitude),
					Service:  serviceSeconds,
				},
			})
			index[stepKey{Type: "pickup", ID: id}] = i
			index[stepKey{Type: "delivery", ID: id}] = j
			paired[i], paired[j] = true, true
			break
		}
	}

	for i, stop := range req.Stops {
		if paired[i] {
			continue
		}
		id := nextID
		nextID++
		out.Jobs = append(out.Jobs, vroomJob{
			ID:       id,
			Location: toLngLat(stop.Latitude, stop.Longitude),
			Service:  serviceSeconds,
		})
		index[stepKey{Type: "job", ID: id}] = i
	}

	return out, index
}

// toDomain раскладывает шаги первого маршрута обратно в стопы запроса.
// Если какой-то стоп не попал в маршрут, ответ считается непригодным.
func toDomain(resp *vroomResponse, req entities.OptimizeRequest, index map[stepKey]int) (entities.OptimizedRoute, error) {
	if resp.Code != 0 {
		return entities.OptimizedRoute{}, fmt.Errorf("%w: code %d", errMalformedResponse, resp.Code)
	}
	if len(resp.Unassigned) > 0 {
		return entities.OptimizedRoute{}, fmt.Errorf("%w: %d unassigned", errMalformedResponse, len(resp.Unassigned))
	}
	if len(resp.Routes) != 1 {
		return entities.OptimizedRoute{}, fmt.Errorf("%w: %d routes", errMalformedResponse, len(resp.Routes))
	}

	stops := make([]entities.Stop, 0, len(req.Stops))
	seen := make(map[int]bool, len(req.Stops))
	for _, step := range resp.Routes[0].Steps {
		if step.Type == "start" || step.Type == "end" || step.Type == "break" {
			continue
		}

		i, ok := index[stepKey{Type: step.Type, ID: step.ID}]
		if !ok || seen[i] {
			return entities.OptimizedRoute{}, fmt.Errorf("%w: unexpected step %s/%d", errMalformedResponse, step.Type, step.ID)
		}
		seen[i] = true

		stop := req.Stops[i]
		eta := step.Arrival
		stop.ETASeconds = &eta
		stops = append(stops, stop)
	}

	if len(stops) != len(req.Stops) {
		return entities.OptimizedRoute{}, fmt.Errorf("%w: %d of %d stops routed", errMalformedResponse, len(stops), len(req.Stops))
	}

	distanceKm := resp.Summary.Distance / 1000
	if distanceKm <= 0 {
		distanceKm = straightLineKm(req.Start, stops)
	}

	return entities.OptimizedRoute{
		Stops:           stops,
		TotalDistanceKm: distanceKm,
		Provider:        entities.ProviderOptimizer,
		RawResponse:     resp.raw,
	}, nil
}

func straightLineKm(start *entities.Location, stops []entities.Stop) float64 {
	var total float64
	prev := start
	for i := range stops {
		loc := stops[i].Location()
		if prev != nil {
			total += geo.HaversineKm(prev.Latitude, prev.Longitude, loc.Latitude, loc.Longitude)
		}
		prev = &loc
	}
	return total
}
