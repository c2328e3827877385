package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange means checkout is on or before check-in.
	ErrInvalidRange = errors.New("checkout date must be after check-in date")
	// ErrLeadTime means the 5-day minimum between now and the stay's start
	// date was violated, for either creation or cancellation.
	ErrLeadTime = errors.New("violates minimum lead time")
	// ErrDateConflict means the requested window overlaps an active
	// reservation for the same property.
	ErrDateConflict = errors.New("selected dates are not available")
	ErrNotFound     = errors.New("not found")
	// ErrAlreadyCancelled means the reservation was cancelled previously.
	ErrAlreadyCancelled = errors.New("reservation has already been cancelled")
	// ErrReferenceCollision means reservation reference generation exhausted
	// its retry budget against the store's uniqueness constraint.
	ErrReferenceCollision = errors.New("could not generate a unique reservation reference")
	ErrValidation         = errors.New("validation failed")
)

// ConflictError is an ErrDateConflict that carries the overlapping
// reservations for diagnostic reporting.
type ConflictError struct {
	Conflicts []Reservation
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v (%d conflicting reservations)", ErrDateConflict, len(e.Conflicts))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrDateConflict
}

// Validationf wraps ErrValidation with a caller-facing detail message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
