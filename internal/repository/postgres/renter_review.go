package postgres

import (
	"context"
	"database/sql"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/repository"
)

const renterReviewColumns = `id, reservation_id, property_id, renter_id, homeowner_id, homeowner_name, rating, comment, reservation_number, created_at`

type renterReviewRepository struct {
	db *sql.DB
}

func NewRenterReviewRepository(db *sql.DB) repository.RenterReviewRepository {
	return &renterReviewRepository{db: db}
}

func (r *renterReviewRepository) Create(ctx context.Context, rv *domain.RenterReview) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO renter_reviews (id, reservation_id, property_id, renter_id, homeowner_id, homeowner_name, rating, comment, reservation_number)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING created_at`
	err = tx.QueryRowContext(ctx, query,
		rv.ID, rv.ReservationID, rv.PropertyID, rv.RenterID, rv.HomeownerID,
		rv.HomeownerName, rv.Rating, rv.Comment, rv.Reference).Scan(&rv.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Validationf("a renter review already exists for this reservation")
		}
		return err
	}

	// Same atomicity rule as property reviews: the renter's aggregate is
	// rewritten in the transaction that inserted the review.
	_, err = tx.ExecContext(ctx,
		`UPDATE users
		 SET rating = COALESCE((SELECT AVG(rating) FROM renter_reviews WHERE renter_id = $1), 0),
		     review_count = (SELECT COUNT(*) FROM renter_reviews WHERE renter_id = $1)
		 WHERE id = $1`, rv.RenterID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *renterReviewRepository) ListByRenter(ctx context.Context, renterID int32) ([]domain.RenterReview, error) {
	query := `SELECT ` + renterReviewColumns + ` FROM renter_reviews WHERE renter_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, renterID)
}

func (r *renterReviewRepository) ListByHomeowner(ctx context.Context, homeownerID int32) ([]domain.RenterReview, error) {
	query := `SELECT ` + renterReviewColumns + ` FROM renter_reviews WHERE homeowner_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, homeownerID)
}

func (r *renterReviewRepository) ExistsForReservation(ctx context.Context, homeownerID int32, reference string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM renter_reviews WHERE homeowner_id = $1 AND reservation_number = $2)`,
		homeownerID, reference).Scan(&exists)
	return exists, err
}

func (r *renterReviewRepository) list(ctx context.Context, query string, arg any) ([]domain.RenterReview, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RenterReview
	for rows.Next() {
		var rv domain.RenterReview
		err := rows.Scan(&rv.ID, &rv.ReservationID, &rv.PropertyID, &rv.RenterID,
			&rv.HomeownerID, &rv.HomeownerName, &rv.Rating, &rv.Comment, &rv.Reference, &rv.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
