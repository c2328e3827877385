package repository

import (
	"context"
	"time"

	"swipestay-backend/internal/domain"
)

type ReservationRepository interface {
	// Create persists a new reservation. The availability re-check and the
	// insert run atomically per property; Create returns
	// domain.ErrDateConflict when the window is taken and
	// domain.ErrReferenceCollision when the reference hits the store's
	// uniqueness constraint.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	GetByReference(ctx context.Context, reference string) (*domain.Reservation, error)
	FindOverlapping(ctx context.Context, propertyID int32, start, end time.Time, statuses []domain.ReservationStatus) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) (*domain.Reservation, error)
	// UpdateFields applies an admin patch over a fixed allow-list of mutable
	// columns. Unknown fields are rejected.
	UpdateFields(ctx context.Context, id int32, fields map[string]any) (*domain.Reservation, error)
	ListByRenter(ctx context.Context, renterID int32) ([]domain.Reservation, error)
	ListByProperty(ctx context.Context, propertyID int32) ([]domain.Reservation, error)
}

type ReviewRepository interface {
	// Create inserts the review and recomputes the property's rating
	// aggregate in a single transaction.
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	// Delete removes the review and recomputes the property's rating
	// aggregate in a single transaction.
	Delete(ctx context.Context, id string) error
	ListByProperty(ctx context.Context, propertyID int32) ([]domain.Review, error)
	ListByAuthor(ctx context.Context, authorID int32) ([]domain.Review, error)
	ExistsForReservation(ctx context.Context, authorID int32, reference string) (bool, error)
}

type RenterReviewRepository interface {
	// Create inserts the renter review and recomputes the renter's rating
	// aggregate in a single transaction.
	Create(ctx context.Context, rv *domain.RenterReview) error
	ListByRenter(ctx context.Context, renterID int32) ([]domain.RenterReview, error)
	ListByHomeowner(ctx context.Context, homeownerID int32) ([]domain.RenterReview, error)
	ExistsForReservation(ctx context.Context, homeownerID int32, reference string) (bool, error)
}

type PropertyRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Property, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
}
