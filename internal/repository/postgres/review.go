package postgres

import (
	"context"
	"database/sql"
	"errors"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/repository"
)

const reviewColumns = `id, property_id, author_id, author_name, rating, comment, reservation_number, stay_start_date, stay_end_date, created_at`

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO reviews (id, property_id, author_id, author_name, rating, comment, reservation_number, stay_start_date, stay_end_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING created_at`
	err = tx.QueryRowContext(ctx, query,
		rv.ID, rv.PropertyID, rv.AuthorID, rv.AuthorName, rv.Rating, rv.Comment,
		rv.Reference, rv.StayStart, rv.StayEnd).Scan(&rv.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Validationf("a review already exists for this reservation")
		}
		return err
	}

	if err := recomputePropertyRating(ctx, tx, rv.PropertyID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`
	rv, err := scanReviewRow(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return rv, err
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var propertyID int32
	err = tx.QueryRowContext(ctx, `DELETE FROM reviews WHERE id = $1 RETURNING property_id`, id).Scan(&propertyID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := recomputePropertyRating(ctx, tx, propertyID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *reviewRepository) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE property_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, propertyID)
}

func (r *reviewRepository) ListByAuthor(ctx context.Context, authorID int32) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE author_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, authorID)
}

func (r *reviewRepository) ExistsForReservation(ctx context.Context, authorID int32, reference string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM reviews WHERE author_id = $1 AND reservation_number = $2)`,
		authorID, reference).Scan(&exists)
	return exists, err
}

func (r *reviewRepository) list(ctx context.Context, query string, arg any) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		rv, err := scanReviewRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rv)
	}
	return out, rows.Err()
}

func scanReviewRow(s rowScanner) (*domain.Review, error) {
	rv := &domain.Review{}
	var stayStart, stayEnd sql.NullTime
	err := s.Scan(&rv.ID, &rv.PropertyID, &rv.AuthorID, &rv.AuthorName, &rv.Rating,
		&rv.Comment, &rv.Reference, &stayStart, &stayEnd, &rv.CreatedAt)
	if err != nil {
		return nil, err
	}
	if stayStart.Valid {
		rv.StayStart = &stayStart.Time
	}
	if stayEnd.Valid {
		rv.StayEnd = &stayEnd.Time
	}
	return rv, nil
}

// recomputePropertyRating rewrites the property's denormalized aggregate
// from all of its reviews. Runs inside the same transaction as the
// triggering insert/delete so the pair (rating, review_count) never reflects
// a partial write.
func recomputePropertyRating(ctx context.Context, tx *sql.Tx, propertyID int32) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE properties
		 SET rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE property_id = $1), 0),
		     review_count = (SELECT COUNT(*) FROM reviews WHERE property_id = $1)
		 WHERE id = $1`, propertyID)
	return err
}
