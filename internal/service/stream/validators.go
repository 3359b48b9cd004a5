package stream

import "strings"

const maxIDLength = 128

func isValidID(id string) bool {
	trimmed := strings.TrimSpace(id)
	return trimmed != "" && trimmed == id && len(id) <= maxIDLength
}
