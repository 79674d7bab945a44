package backendapi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned for 401 responses (missing or expired
	// token).
	ErrUnauthorized = errors.New("backend rejected credentials")

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("resource not found")

	// ErrSeatConflict is returned when the backend rejects a submission
	// because a selected seat is no longer available.
	ErrSeatConflict = errors.New("seat no longer available")

	// ErrBackendUnavailable wraps network-level failures.
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// APIError is a non-2xx backend response not covered by a sentinel.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}
