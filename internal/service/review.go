package service

import (
	"context"

	"github.com/google/uuid"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/logger"
	"swipestay-backend/internal/repository"
	"swipestay-backend/internal/utils"
)

type reviewService struct {
	reviewRepo       repository.ReviewRepository
	renterReviewRepo repository.RenterReviewRepository
	reservationRepo  repository.ReservationRepository
	propertyRepo     repository.PropertyRepository
	userRepo         repository.UserRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	renterReviewRepo repository.RenterReviewRepository,
	reservationRepo repository.ReservationRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:       reviewRepo,
		renterReviewRepo: renterReviewRepo,
		reservationRepo:  reservationRepo,
		propertyRepo:     propertyRepo,
		userRepo:         userRepo,
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, actor domain.Actor, req SubmitReviewRequest) (*domain.Review, error) {
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}
	if !utils.IsReservationReference(req.Reference) {
		return nil, domain.Validationf("a valid reservation reference is required")
	}

	// The reservation must be the author's own stay at this property.
	rsv, err := s.reservationRepo.GetByReference(ctx, req.Reference)
	if err != nil {
		return nil, err
	}
	if rsv.PropertyID != req.PropertyID {
		return nil, domain.Validationf("reservation does not belong to this property")
	}
	if rsv.RenterID == nil || *rsv.RenterID != actor.UserID {
		return nil, domain.Validationf("reservation does not belong to the calling actor")
	}
	if rsv.Status == domain.ReservationStatusCancelled {
		return nil, domain.Validationf("cancelled stays cannot be reviewed")
	}

	exists, err := s.reviewRepo.ExistsForReservation(ctx, actor.UserID, req.Reference)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Validationf("a review already exists for this reservation")
	}

	author, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	rv := &domain.Review{
		ID:         uuid.NewString(),
		PropertyID: req.PropertyID,
		AuthorID:   actor.UserID,
		AuthorName: author.Name,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Reference:  req.Reference,
		StayStart:  &rsv.StartDate,
		StayEnd:    &rsv.EndDate,
	}
	if err := s.reviewRepo.Create(ctx, rv); err != nil {
		return nil, err
	}
	logger.Info("review submitted",
		"review_id", rv.ID, "property_id", rv.PropertyID, "author_id", rv.AuthorID, "rating", rv.Rating)
	return rv, nil
}

func (s *reviewService) SubmitRenterReview(ctx context.Context, actor domain.Actor, req SubmitRenterReviewRequest) (*domain.RenterReview, error) {
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}
	if !utils.IsReservationReference(req.Reference) {
		return nil, domain.Validationf("a valid reservation reference is required")
	}

	rsv, err := s.reservationRepo.GetByReference(ctx, req.Reference)
	if err != nil {
		return nil, err
	}
	if rsv.RenterID == nil {
		return nil, domain.Validationf("guest checkouts cannot be renter-reviewed")
	}

	// Only the homeowner of the stay's property may rate the renter.
	property, err := s.propertyRepo.GetByID(ctx, rsv.PropertyID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && property.OwnerID != actor.UserID {
		return nil, domain.Validationf("reservation is not for one of the calling actor's properties")
	}

	exists, err := s.renterReviewRepo.ExistsForReservation(ctx, actor.UserID, req.Reference)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Validationf("a renter review already exists for this reservation")
	}

	homeowner, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	rv := &domain.RenterReview{
		ID:            uuid.NewString(),
		ReservationID: rsv.ID,
		PropertyID:    rsv.PropertyID,
		RenterID:      *rsv.RenterID,
		HomeownerID:   actor.UserID,
		HomeownerName: homeowner.Name,
		Rating:        req.Rating,
		Comment:       req.Comment,
		Reference:     req.Reference,
	}
	if err := s.renterReviewRepo.Create(ctx, rv); err != nil {
		return nil, err
	}
	logger.Info("renter review submitted",
		"review_id", rv.ID, "renter_id", rv.RenterID, "homeowner_id", rv.HomeownerID, "rating", rv.Rating)
	return rv, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, actor domain.Actor, reviewID string) error {
	if !actor.IsAdmin() {
		return domain.Validationf("review deletion requires an admin actor")
	}
	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}
	logger.Info("review deleted", "review_id", reviewID, "actor_id", actor.UserID)
	return nil
}

func (s *reviewService) ListPropertyReviews(ctx context.Context, propertyID int32) ([]domain.Review, error) {
	return s.reviewRepo.ListByProperty(ctx, propertyID)
}

func (s *reviewService) ListAuthorReviews(ctx context.Context, authorID int32) ([]domain.Review, error) {
	return s.reviewRepo.ListByAuthor(ctx, authorID)
}

func (s *reviewService) ListRenterReviews(ctx context.Context, renterID int32) ([]domain.RenterReview, error) {
	return s.renterReviewRepo.ListByRenter(ctx, renterID)
}

func (s *reviewService) ListHomeownerReviews(ctx context.Context, homeownerID int32) ([]domain.RenterReview, error) {
	return s.renterReviewRepo.ListByHomeowner(ctx, homeownerID)
}

func validateRating(rating int) error {
	if rating < domain.RatingMin || rating > domain.RatingMax {
		return domain.Validationf("rating must be between %d and %d", domain.RatingMin, domain.RatingMax)
	}
	return nil
}
