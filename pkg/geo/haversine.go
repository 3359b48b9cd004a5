// Package geo содержит расчеты по сфере без внешних вызовов.
package geo

import "math"

// EarthRadiusKm - средний радиус Земли.
const EarthRadiusKm = 6371.0

// HaversineKm возвращает расстояние по большой окружности между двумя точками в градусах.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	// у антиподов ошибка округления выводит a за 1
	a = min(max(a, 0), 1)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
