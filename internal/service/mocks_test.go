package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"swipestay-backend/internal/domain"
)

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) FindOverlapping(ctx context.Context, propertyID int32, start, end time.Time, statuses []domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, propertyID, start, end, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) (*domain.Reservation, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) UpdateFields(ctx context.Context, id int32, fields map[string]any) (*domain.Reservation, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByRenter(ctx context.Context, renterID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, renterID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockPropertyRepo
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}
func (m *MockReviewRepo) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReviewRepo) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Review, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewRepo) ListByAuthor(ctx context.Context, authorID int32) ([]domain.Review, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewRepo) ExistsForReservation(ctx context.Context, authorID int32, reference string) (bool, error) {
	args := m.Called(ctx, authorID, reference)
	return args.Bool(0), args.Error(1)
}

// MockRenterReviewRepo
type MockRenterReviewRepo struct {
	mock.Mock
}

func (m *MockRenterReviewRepo) Create(ctx context.Context, rv *domain.RenterReview) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}
func (m *MockRenterReviewRepo) ListByRenter(ctx context.Context, renterID int32) ([]domain.RenterReview, error) {
	args := m.Called(ctx, renterID)
	return args.Get(0).([]domain.RenterReview), args.Error(1)
}
func (m *MockRenterReviewRepo) ListByHomeowner(ctx context.Context, homeownerID int32) ([]domain.RenterReview, error) {
	args := m.Called(ctx, homeownerID)
	return args.Get(0).([]domain.RenterReview), args.Error(1)
}
func (m *MockRenterReviewRepo) ExistsForReservation(ctx context.Context, homeownerID int32, reference string) (bool, error) {
	args := m.Called(ctx, homeownerID, reference)
	return args.Bool(0), args.Error(1)
}

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Charge(ctx context.Context, paymentToken string, amount float64) error {
	args := m.Called(ctx, paymentToken, amount)
	return args.Error(0)
}
