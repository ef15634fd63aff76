package upstream

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned for any upstream 401, regardless of which
// endpoint produced it. The delivery layer reacts by dropping the
// session credential and redirecting to the login route.
var ErrUnauthorized = errors.New("upstream: unauthorized")

// ShapeError reports a response body outside the documented contract
// for an endpoint. The client fails loudly instead of guessing what the
// upstream meant.
type ShapeError struct {
	Endpoint string
	Body     string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("upstream: undocumented response shape from %s: %s", e.Endpoint, e.Body)
}

// StatusError carries a non-2xx upstream status together with the
// message the upstream attached, when it attached one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream: status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream: status %d: %s", e.StatusCode, e.Message)
}
