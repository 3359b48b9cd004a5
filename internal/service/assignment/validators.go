package assignment

import (
	"strings"

	"tracking/internal/entities"
)

const maxIDLength = 128

func isValidID(id string) bool {
	trimmed := strings.TrimSpace(id)
	return trimmed != "" && trimmed == id && len(id) <= maxIDLength
}

func validateEvent(event entities.AssignmentEvent) error {
	if event.OrderID == "" || event.Status == "" {
		return ErrMissingRequiredFields
	}
	if !isValidID(event.OrderID) {
		return ErrInvalidOrderID
	}
	return nil
}
