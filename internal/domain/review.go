package domain

import "time"

const (
	// Review ratings use the canonical 1-5 scale everywhere.
	RatingMin = 1
	RatingMax = 5
)

// Review is a renter-authored rating of a property, tied to a completed or
// confirmed stay via the reservation reference.
type Review struct {
	ID         string     `json:"id"`
	PropertyID int32      `json:"property_id"`
	AuthorID   int32      `json:"author_id"`
	AuthorName string     `json:"author_name"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment"`
	Reference  string     `json:"reservation_number"`
	StayStart  *time.Time `json:"stay_start_date,omitempty"`
	StayEnd    *time.Time `json:"stay_end_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// RenterReview mirrors Review but is homeowner-authored and rates the renter
// after a stay. The aggregate lands on the renter's user record.
type RenterReview struct {
	ID            string    `json:"id"`
	ReservationID int32     `json:"reservation_id"`
	PropertyID    int32     `json:"property_id"`
	RenterID      int32     `json:"renter_id"`
	HomeownerID   int32     `json:"homeowner_id"`
	HomeownerName string    `json:"homeowner_name"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	Reference     string    `json:"reservation_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// RatingAggregate is the denormalized pair written back to the review
// subject (property or user). Rating is the arithmetic mean of all review
// ratings, 0 when no reviews exist.
type RatingAggregate struct {
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
}
