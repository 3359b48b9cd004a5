package route

import "errors"

var (
	ErrPlanNotFound          = errors.New("route plan not found")
	ErrNoOpenStops           = errors.New("driver has no open stops")
	ErrDriverLocationUnknown = errors.New("driver location unknown")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidPlanID         = errors.New("invalid route plan id")
)
