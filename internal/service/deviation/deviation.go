package deviation

import (
	"tracking/internal/entities"
	"tracking/pkg/geo"
)

// DefaultThresholdKm - отклонение от следующего стопа, после которого маршрут пересчитывается.
const DefaultThresholdKm = 0.5

type Detector struct {
	thresholdKm float64
}

func New(thresholdKm float64) *Detector {
	if thresholdKm <= 0 {
		thresholdKm = DefaultThresholdKm
	}
	return &Detector{thresholdKm: thresholdKm}
}

// Evaluate возвращает расстояние до следующего стопа плана.
// ok=false, если плана нет или в нем нет стопов.
func (d *Detector) Evaluate(report entities.PositionReport, plan *entities.RoutePlan) (distanceKm float64, ok bool) {
	if plan == nil || len(plan.Stops) == 0 {
		return 0, false
	}

	next := plan.Stops[0]
	return geo.HaversineKm(report.Latitude, report.Longitude, next.Latitude, next.Longitude), true
}

// ShouldReplan - true, если водитель дальше порога от следующего стопа (граница включительно).
func (d *Detector) ShouldReplan(report entities.PositionReport, plan *entities.RoutePlan) bool {
	distance, ok := d.Evaluate(report, plan)
	return ok && distance >= d.thresholdKm
}

func (d *Detector) ThresholdKm() float64 {
	return d.thresholdKm
}
