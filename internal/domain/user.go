package domain

import "time"

type UserRole string

const (
	UserRoleRenter    UserRole = "renter"
	UserRoleHomeowner UserRole = "homeowner"
	UserRoleAdmin     UserRole = "admin"
)

// User carries the account fields the engine touches: identity for actor
// checks and the renter-side rating aggregate maintained by renter reviews.
type User struct {
	ID          int32     `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        UserRole  `json:"role"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Actor is the caller identity supplied explicitly to every engine
// operation. A zero UserID with IsGuest set denotes guest checkout.
type Actor struct {
	UserID  int32
	Role    UserRole
	IsGuest bool
}

func (a Actor) IsAdmin() bool {
	return a.Role == UserRoleAdmin
}
