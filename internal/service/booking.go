package service

import (
	"context"
	"errors"
	"math"
	"time"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/logger"
	"swipestay-backend/internal/repository"
	"swipestay-backend/internal/utils"
)

const (
	// MinLeadTimeDays is the minimum number of calendar days between "now"
	// and a reservation's start date, enforced for both creation and
	// cancellation. Policy constant.
	MinLeadTimeDays = 5
	// CancellationFeeRate is withheld from the total on cancellation; the
	// rest is reported as the refund.
	CancellationFeeRate = 0.03
)

type bookingService struct {
	reservationRepo repository.ReservationRepository
	propertyRepo    repository.PropertyRepository
	paymentSvc      PaymentService

	// now is swapped out in tests; lead-time checks must not read the wall
	// clock directly.
	now func() time.Time
}

func NewBookingService(
	reservationRepo repository.ReservationRepository,
	propertyRepo repository.PropertyRepository,
	paymentSvc PaymentService,
) BookingService {
	return &bookingService{
		reservationRepo: reservationRepo,
		propertyRepo:    propertyRepo,
		paymentSvc:      paymentSvc,
		now:             time.Now,
	}
}

func (s *bookingService) CreateReservation(ctx context.Context, actor domain.Actor, req CreateReservationRequest) (*domain.Reservation, error) {
	if err := validateCreateRequest(actor, req); err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	if err := s.checkLeadTime(req.StartDate); err != nil {
		return nil, err
	}

	conflicts, err := s.reservationRepo.FindOverlapping(ctx, req.PropertyID, req.StartDate, req.EndDate, domain.ActiveStatuses)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &domain.ConflictError{Conflicts: conflicts}
	}

	quote, err := utils.CalculateQuote(property.NightlyRate, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	paymentToken := ""
	if req.Guest != nil {
		paymentToken = req.Guest.PaymentToken
	}
	if err := s.paymentSvc.Charge(ctx, paymentToken, quote.Total); err != nil {
		return nil, err
	}

	rsv := &domain.Reservation{
		PropertyID: req.PropertyID,
		RenterID:   req.RenterID,
		StartDate:  utils.Midnight(req.StartDate),
		EndDate:    utils.Midnight(req.EndDate),
		Nights:     quote.Nights,
		Subtotal:   quote.Subtotal,
		Tax:        quote.Tax,
		Total:      quote.Total,
		Status:     domain.ReservationStatusConfirmed,
		Guest:      req.Guest,
	}

	// The reference is unique with overwhelming probability; the store's
	// uniqueness constraint catches the rest and we re-mint.
	for attempt := 0; attempt < utils.MaxReferenceAttempts; attempt++ {
		rsv.Reference = utils.NewReservationReference(s.now())
		err = s.reservationRepo.Create(ctx, rsv)
		if errors.Is(err, domain.ErrReferenceCollision) {
			logger.Warn("reservation reference collided, re-minting",
				"reference", rsv.Reference, "attempt", attempt+1)
			continue
		}
		if errors.Is(err, domain.ErrDateConflict) {
			// Lost the race to a concurrent creation after the pre-check.
			return nil, err
		}
		if err != nil {
			return nil, err
		}
		logger.Info("reservation created",
			"reservation_id", rsv.ID, "reference", rsv.Reference,
			"property_id", rsv.PropertyID, "nights", rsv.Nights, "total", rsv.Total)
		return rsv, nil
	}
	return nil, domain.ErrReferenceCollision
}

func (s *bookingService) CancelReservation(ctx context.Context, actor domain.Actor, reservationID int32) (*domain.CancellationResult, error) {
	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if rsv.Status == domain.ReservationStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	// Admin cancellations skip the window but still report the fee split.
	if !actor.IsAdmin() {
		if err := s.checkLeadTime(rsv.StartDate); err != nil {
			return nil, err
		}
	}

	if _, err := s.reservationRepo.UpdateStatus(ctx, reservationID, domain.ReservationStatusCancelled); err != nil {
		return nil, err
	}

	result := cancellationFigures(rsv)
	logger.Info("reservation cancelled",
		"reservation_id", rsv.ID, "reference", rsv.Reference,
		"fee", result.CancellationFee, "refund", result.Refund, "actor_id", actor.UserID)
	return result, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, actor domain.Actor, reservationID int32, status domain.ReservationStatus) (*domain.Reservation, *domain.CancellationResult, error) {
	if !actor.IsAdmin() {
		return nil, nil, domain.Validationf("status override requires an admin actor")
	}
	switch status {
	case domain.ReservationStatusPending, domain.ReservationStatusConfirmed,
		domain.ReservationStatusCancelled, domain.ReservationStatusCompleted:
	default:
		return nil, nil, domain.Validationf("unknown status %q", status)
	}

	rsv, err := s.reservationRepo.UpdateStatus(ctx, reservationID, status)
	if err != nil {
		return nil, nil, err
	}

	var figures *domain.CancellationResult
	if status == domain.ReservationStatusCancelled {
		figures = cancellationFigures(rsv)
	}
	logger.Info("reservation status overridden",
		"reservation_id", rsv.ID, "status", status, "actor_id", actor.UserID)
	return rsv, figures, nil
}

func (s *bookingService) PatchReservation(ctx context.Context, actor domain.Actor, reservationID int32, patch AdminReservationPatch) (*domain.Reservation, error) {
	if !actor.IsAdmin() {
		return nil, domain.Validationf("reservation patch requires an admin actor")
	}

	fields := map[string]any{}
	if patch.Status != nil {
		fields["status"] = string(*patch.Status)
	}
	if patch.GuestEmail != nil {
		fields["guest_email"] = *patch.GuestEmail
	}
	return s.reservationRepo.UpdateFields(ctx, reservationID, fields)
}

func (s *bookingService) GetReservation(ctx context.Context, reservationID int32) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, reservationID)
}

func (s *bookingService) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	if !utils.IsReservationReference(reference) {
		return nil, domain.Validationf("malformed reservation reference")
	}
	return s.reservationRepo.GetByReference(ctx, reference)
}

func (s *bookingService) ListByRenter(ctx context.Context, renterID int32) ([]domain.Reservation, error) {
	return s.reservationRepo.ListByRenter(ctx, renterID)
}

func (s *bookingService) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Reservation, error) {
	return s.reservationRepo.ListByProperty(ctx, propertyID)
}

func (s *bookingService) CheckAvailability(ctx context.Context, propertyID int32, start, end time.Time) (bool, []domain.Reservation, error) {
	if utils.NightCount(start, end) <= 0 {
		return false, nil, domain.ErrInvalidRange
	}
	conflicts, err := s.reservationRepo.FindOverlapping(ctx, propertyID, start, end, domain.ActiveStatuses)
	if err != nil {
		return false, nil, err
	}
	return len(conflicts) == 0, conflicts, nil
}

func (s *bookingService) Quote(ctx context.Context, propertyID int32, start, end time.Time) (*utils.Quote, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	quote, err := utils.CalculateQuote(property.NightlyRate, start, end)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// checkLeadTime enforces the 5-day minimum between today and start. The
// boundary is inclusive: a stay starting exactly MinLeadTimeDays from today
// passes.
func (s *bookingService) checkLeadTime(start time.Time) error {
	today := utils.Midnight(s.now())
	daysUntil := int(math.Ceil(utils.Midnight(start).Sub(today).Hours() / 24))
	if daysUntil < MinLeadTimeDays {
		return domain.ErrLeadTime
	}
	return nil
}

func cancellationFigures(rsv *domain.Reservation) *domain.CancellationResult {
	fee := utils.Round2(rsv.Total * CancellationFeeRate)
	return &domain.CancellationResult{
		Reference:       rsv.Reference,
		Total:           rsv.Total,
		CancellationFee: fee,
		Refund:          utils.Round2(rsv.Total - fee),
	}
}

func validateCreateRequest(actor domain.Actor, req CreateReservationRequest) error {
	if utils.NightCount(req.StartDate, req.EndDate) <= 0 {
		return domain.ErrInvalidRange
	}
	if req.RenterID == nil {
		// Guest checkout: the contact bundle stands in for the account.
		if req.Guest == nil {
			return domain.Validationf("guest contact details are required for guest checkout")
		}
		if req.Guest.FirstName == "" || req.Guest.LastName == "" {
			return domain.Validationf("guest first and last name are required")
		}
		if req.Guest.Email == "" {
			return domain.Validationf("guest email is required")
		}
		if req.Guest.PaymentToken == "" {
			return domain.Validationf("guest payment details are required")
		}
	} else if !actor.IsAdmin() && !actor.IsGuest && actor.UserID != *req.RenterID {
		return domain.Validationf("renter does not match the calling actor")
	}
	return nil
}
