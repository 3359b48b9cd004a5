package optimizer

// Формат VROOM, который принимает OpenRouteService /optimization.
// Координаты в порядке [lng, lat].

type vroomRequest struct {
	Jobs      []vroomJob      `json:"jobs,omitempty"`
	Shipments []vroomShipment `json:"shipments,omitempty"`
	Vehicles  []vroomVehicle  `json:"vehicles"`
}

type vroomJob struct {
	ID       int        `json:"id"`
	Location [2]float64 `json:"location"`
	Service  int64      `json:"service,omitempty"`
}

type vroomShipment struct {
	Pickup   vroomShipmentStep `json:"pickup"`
	Delivery vroomShipmentStep `json:"delivery"`
}

type vroomShipmentStep struct {
	ID       int        `json:"id"`
	Location [2]float64 `json:"location"`
	Service  int64      `json:"service,omitempty"`
}

type vroomVehicle struct {
	ID      int         `json:"id"`
	Profile string      `json:"profile"`
	Start   *[2]float64 `json:"start,omitempty"`
}

type vroomResponse struct {
	Code       int               `json:"code"`
	Summary    vroomSummary      `json:"summary"`
	Routes     []vroomRoute      `json:"routes"`
	Unassigned []vroomUnassigned `json:"unassigned"`

	raw []byte
}

type vroomSummary struct {
	Cost     float64 `json:"cost"`
	Distance float64 `json:"distance"` // метры, есть не у всех профилей
	Duration float64 `json:"duration"`
}

type vroomRoute struct {
	Vehicle int         `json:"vehicle"`
	Steps   []vroomStep `json:"steps"`
}

type vroomStep struct {
	Type    string `json:"type"` // start, job, pickup, delivery, end
	ID      int    `json:"id"`
	Arrival int64  `json:"arrival"`
}

type vroomUnassigned struct {
	ID int `json:"id"`
}

// stepKey однозначно связывает шаг ответа со стопом запроса.
type stepKey struct {
	Type string
	ID   int
}
