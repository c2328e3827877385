package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

// MaxReferenceAttempts bounds how many times reservation creation re-mints a
// reference after a uniqueness collision before giving up.
const MaxReferenceAttempts = 3

var referencePattern = regexp.MustCompile(`^RES-\d{13,}-\d{3}$`)

// NewReservationReference mints a booking reference in the persisted
// RES-<unix-millis>-<3-digit-random> format. Uniqueness is enforced by the
// store, not here; callers retry on collision.
func NewReservationReference(now time.Time) string {
	return fmt.Sprintf("RES-%d-%03d", now.UnixMilli(), rand.Intn(1000))
}

// IsReservationReference reports whether s matches the reference format.
func IsReservationReference(s string) bool {
	return referencePattern.MatchString(s)
}
