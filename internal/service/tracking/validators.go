package tracking

import (
	"strings"

	"tracking/internal/entities"
)

const maxIDLength = 128

func isValidID(id string) bool {
	trimmed := strings.TrimSpace(id)
	return trimmed != "" && trimmed == id && len(id) <= maxIDLength
}

func validateIngest(in entities.PositionIngest) error {
	if in.OrderID == "" || in.DriverID == "" || in.Latitude == nil || in.Longitude == nil {
		return ErrMissingRequiredFields
	}
	if !isValidID(in.OrderID) {
		return ErrInvalidOrderID
	}
	if !isValidID(in.DriverID) {
		return ErrInvalidDriverID
	}
	return nil
}
