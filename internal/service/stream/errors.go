package stream

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrSinkWrite      = errors.New("stream sink write failed")

	errSubscriptionClosed = errors.New("subscription closed")
)
