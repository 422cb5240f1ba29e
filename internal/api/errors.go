package api

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned when the server answered 401 on an
// authenticated call. The session has already been cleared by the time
// callers see it; they should abort rendering and send the user to the
// login flow instead of showing an inline error.
var ErrUnauthenticated = errors.New("session expired, please log in again")

// fallbackDetail is shown when a failed response carried no detail field.
const fallbackDetail = "request failed"

// APIError is any non-2xx response other than an authentication failure.
// Detail is the server-provided message when one was present.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s (status %d)", fallbackDetail, e.StatusCode)
	}
	return e.Detail
}
