package service

import (
	"context"
	"time"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/utils"
)

// CreateReservationRequest is the typed input for booking creation. Dates
// are calendar dates; the HTTP layer parses and validates the raw body
// before the engine sees it.
type CreateReservationRequest struct {
	PropertyID int32
	RenterID   *int32
	StartDate  time.Time
	EndDate    time.Time
	// Guest carries checkout contact details; required when RenterID is nil.
	Guest *domain.GuestContact
}

// AdminReservationPatch is the allow-listed admin update surface.
type AdminReservationPatch struct {
	Status     *domain.ReservationStatus
	GuestEmail *string
}

type BookingService interface {
	CreateReservation(ctx context.Context, actor domain.Actor, req CreateReservationRequest) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, actor domain.Actor, reservationID int32) (*domain.CancellationResult, error)
	// UpdateStatus is the admin override: unconditional transition. When the
	// new status is cancelled the fee/refund figures are reported for
	// operator visibility without blocking on the lead-time window.
	UpdateStatus(ctx context.Context, actor domain.Actor, reservationID int32, status domain.ReservationStatus) (*domain.Reservation, *domain.CancellationResult, error)
	PatchReservation(ctx context.Context, actor domain.Actor, reservationID int32, patch AdminReservationPatch) (*domain.Reservation, error)
	GetReservation(ctx context.Context, reservationID int32) (*domain.Reservation, error)
	GetByReference(ctx context.Context, reference string) (*domain.Reservation, error)
	ListByRenter(ctx context.Context, renterID int32) ([]domain.Reservation, error)
	ListByProperty(ctx context.Context, propertyID int32) ([]domain.Reservation, error)
	CheckAvailability(ctx context.Context, propertyID int32, start, end time.Time) (bool, []domain.Reservation, error)
	Quote(ctx context.Context, propertyID int32, start, end time.Time) (*utils.Quote, error)
}

// SubmitReviewRequest is the typed input for a property review.
type SubmitReviewRequest struct {
	PropertyID int32
	Rating     int
	Comment    string
	Reference  string
}

// SubmitRenterReviewRequest is the typed input for a homeowner's review of a
// renter after a stay.
type SubmitRenterReviewRequest struct {
	Rating    int
	Comment   string
	Reference string
}

type ReviewService interface {
	SubmitReview(ctx context.Context, actor domain.Actor, req SubmitReviewRequest) (*domain.Review, error)
	SubmitRenterReview(ctx context.Context, actor domain.Actor, req SubmitRenterReviewRequest) (*domain.RenterReview, error)
	// DeleteReview is admin-only and triggers rating recomputation.
	DeleteReview(ctx context.Context, actor domain.Actor, reviewID string) error
	ListPropertyReviews(ctx context.Context, propertyID int32) ([]domain.Review, error)
	ListAuthorReviews(ctx context.Context, authorID int32) ([]domain.Review, error)
	ListRenterReviews(ctx context.Context, renterID int32) ([]domain.RenterReview, error)
	ListHomeownerReviews(ctx context.Context, homeownerID int32) ([]domain.RenterReview, error)
}

// PaymentService simulates the payment processor. No real transfer happens
// anywhere in the engine.
type PaymentService interface {
	Charge(ctx context.Context, paymentToken string, amount float64) error
}
