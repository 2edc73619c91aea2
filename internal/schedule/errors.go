package schedule

import (
	"errors"
	"fmt"
)

// ErrDecode marks a response body that is not a valid schedule document.
var ErrDecode = errors.New("decoding schedule response")

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("schedule API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("schedule API returned status %d: %s", e.StatusCode, e.Body)
}

// StatusCode extracts the HTTP status from err, or 0 if err is not a StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
