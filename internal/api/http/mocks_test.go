package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/service"
	"swipestay-backend/internal/utils"
)

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateReservation(ctx context.Context, actor domain.Actor, req service.CreateReservationRequest) (*domain.Reservation, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockBookingService) CancelReservation(ctx context.Context, actor domain.Actor, reservationID int32) (*domain.CancellationResult, error) {
	args := m.Called(ctx, actor, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CancellationResult), args.Error(1)
}
func (m *MockBookingService) UpdateStatus(ctx context.Context, actor domain.Actor, reservationID int32, status domain.ReservationStatus) (*domain.Reservation, *domain.CancellationResult, error) {
	args := m.Called(ctx, actor, reservationID, status)
	var rsv *domain.Reservation
	if args.Get(0) != nil {
		rsv = args.Get(0).(*domain.Reservation)
	}
	var figures *domain.CancellationResult
	if args.Get(1) != nil {
		figures = args.Get(1).(*domain.CancellationResult)
	}
	return rsv, figures, args.Error(2)
}
func (m *MockBookingService) PatchReservation(ctx context.Context, actor domain.Actor, reservationID int32, patch service.AdminReservationPatch) (*domain.Reservation, error) {
	args := m.Called(ctx, actor, reservationID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockBookingService) GetReservation(ctx context.Context, reservationID int32) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockBookingService) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockBookingService) ListByRenter(ctx context.Context, renterID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, renterID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockBookingService) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockBookingService) CheckAvailability(ctx context.Context, propertyID int32, start, end time.Time) (bool, []domain.Reservation, error) {
	args := m.Called(ctx, propertyID, start, end)
	if args.Get(1) == nil {
		return args.Bool(0), nil, args.Error(2)
	}
	return args.Bool(0), args.Get(1).([]domain.Reservation), args.Error(2)
}
func (m *MockBookingService) Quote(ctx context.Context, propertyID int32, start, end time.Time) (*utils.Quote, error) {
	args := m.Called(ctx, propertyID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utils.Quote), args.Error(1)
}

// MockReviewService
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) SubmitReview(ctx context.Context, actor domain.Actor, req service.SubmitReviewRequest) (*domain.Review, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewService) SubmitRenterReview(ctx context.Context, actor domain.Actor, req service.SubmitRenterReviewRequest) (*domain.RenterReview, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenterReview), args.Error(1)
}
func (m *MockReviewService) DeleteReview(ctx context.Context, actor domain.Actor, reviewID string) error {
	args := m.Called(ctx, actor, reviewID)
	return args.Error(0)
}
func (m *MockReviewService) ListPropertyReviews(ctx context.Context, propertyID int32) ([]domain.Review, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewService) ListAuthorReviews(ctx context.Context, authorID int32) ([]domain.Review, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewService) ListRenterReviews(ctx context.Context, renterID int32) ([]domain.RenterReview, error) {
	args := m.Called(ctx, renterID)
	return args.Get(0).([]domain.RenterReview), args.Error(1)
}
func (m *MockReviewService) ListHomeownerReviews(ctx context.Context, homeownerID int32) ([]domain.RenterReview, error) {
	args := m.Called(ctx, homeownerID)
	return args.Get(0).([]domain.RenterReview), args.Error(1)
}
