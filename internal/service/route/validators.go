package route

import (
	"strings"

	"github.com/google/uuid"
)

const maxIDLength = 128

func isValidID(id string) bool {
	trimmed := strings.TrimSpace(id)
	return trimmed != "" && trimmed == id && len(id) <= maxIDLength
}

// id плана всегда uuid, его выдает Replan
func isValidPlanID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
