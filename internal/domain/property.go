package domain

import "time"

type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusInactive PropertyStatus = "inactive"
)

// Property carries the subset of listing fields the booking engine reads:
// the nightly rate for pricing and the denormalized rating aggregate.
// Listing CRUD itself is owned by another service.
type Property struct {
	ID          int32          `json:"id"`
	OwnerID     int32          `json:"owner_id"`
	Title       string         `json:"title"`
	Location    string         `json:"location"`
	NightlyRate float64        `json:"price_per_night"`
	Rating      float64        `json:"rating"`
	ReviewCount int            `json:"review_count"`
	Status      PropertyStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}
