package models

import (
	"fmt"
	"net/http"
)

// ValidationError is returned when an address fails syntax validation
type ValidationError struct {
	Address string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid IP address %q", e.Address)
}

// TransportError covers every way a lookup request can fail after passing
// validation: connection problems, non-2xx responses and undecodable bodies.
// StatusCode is zero when no response was received.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("lookup request failed with status %d %s: %v", e.StatusCode, http.StatusText(e.StatusCode), e.Err)
	}
	return fmt.Sprintf("lookup request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
