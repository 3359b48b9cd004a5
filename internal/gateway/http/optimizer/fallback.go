package optimizer

import (
	"math"
	"time"

	"tracking/internal/entities"
	"tracking/pkg/geo"
)

const (
	DefaultFallbackSpeedKmh = 30.0
	DefaultFallbackDwell    = 5 * time.Minute
)

// Fallback - детерминированный маршрут без внешних вызовов: порядок стопов сохраняется,
// расстояние считается по прямой между соседними стопами.
type Fallback struct {
	speedKmh float64
	dwell    time.Duration
}

func NewFallback(speedKmh float64, dwell time.Duration) *Fallback {
	if speedKmh <= 0 {
		speedKmh = DefaultFallbackSpeedKmh
	}
	if dwell < 0 {
		dwell = DefaultFallbackDwell
	}
	return &Fallback{
		speedKmh: speedKmh,
		dwell:    dwell,
	}
}

// Plan: ETA_i = travel_i / speed + i * dwell, первый стоп - 0.
func (f *Fallback) Plan(req entities.OptimizeRequest) entities.OptimizedRoute {
	stops := make([]entities.Stop, len(req.Stops))
	var distanceKm float64

	for i, stop := range req.Stops {
		if i > 0 {
			prev := req.Stops[i-1]
			distanceKm += geo.HaversineKm(prev.Latitude, prev.Longitude, stop.Latitude, stop.Longitude)
		}

		travelSeconds := distanceKm / f.speedKmh * 3600
		eta := int64(math.Round(travelSeconds + float64(i)*f.dwell.Seconds()))

		stop.ETASeconds = &eta
		stops[i] = stop
	}

	return entities.OptimizedRoute{
		Stops:           stops,
		TotalDistanceKm: distanceKm,
		Provider:        entities.ProviderFallback,
	}
}
