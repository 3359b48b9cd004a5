package optimizer

import (
	"errors"
	"fmt"
)

var (
	errNoAPIKey          = errors.New("optimizer api key is not configured")
	errMalformedResponse = errors.New("malformed optimizer response")
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}
