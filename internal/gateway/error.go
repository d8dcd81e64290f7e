package gateway

import (
	"errors"
	"fmt"
)

// Error is a failure reported by the backend. Message carries the
// backend's human-readable explanation when the response body had one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// UserMessage returns the backend's message for display, or the
// operation-specific fallback when the backend gave none.
func UserMessage(err error, fallback string) string {
	var ge *Error
	if errors.As(err, &ge) && ge.Message != "" {
		return ge.Message
	}
	return fallback
}
