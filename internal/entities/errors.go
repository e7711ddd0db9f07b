package entities

import "fmt"

// ValidationError means the command input itself was malformed. The caller
// must fix the request; retrying the same input will fail again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError means the referenced booking does not exist or is already
// tombstoned.
type NotFoundError struct {
	BookingID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %d not found", e.BookingID)
}
