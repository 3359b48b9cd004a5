package assignment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required assignment fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrUndefinedStatus       = errors.New("undefined assignment status")
	ErrAssignmentNotFound    = errors.New("assignment not found")
	ErrAssignmentClosed      = errors.New("assignment already closed")
)
