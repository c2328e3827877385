package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lib/pq"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/repository"
)

const reservationColumns = `id, property_id, renter_id, start_date, end_date, nights, subtotal, tax, total_price, reservation_number, status,
	guest_first_name, guest_last_name, guest_middle_initial, guest_email, guest_credit_card, created_at, updated_at`

// reservationMutableFields is the fixed allow-list for admin patches. Any
// other column is immutable through UpdateFields.
var reservationMutableFields = map[string]bool{
	"status":      true,
	"guest_email": true,
}

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, rsv *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Serialize conflicting creations for the same property. The lock is
	// released at commit/rollback.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(rsv.PropertyID)); err != nil {
		return err
	}

	// Re-check the window under the lock; the service-level pre-check can
	// race with a concurrent creation.
	var conflicts int
	err = tx.QueryRowContext(ctx,
		`SELECT count(*) FROM reservations
		 WHERE property_id = $1 AND status = ANY($2) AND start_date < $4 AND end_date > $3`,
		rsv.PropertyID, statusArray(domain.ActiveStatuses), rsv.StartDate, rsv.EndDate).Scan(&conflicts)
	if err != nil {
		return err
	}
	if conflicts > 0 {
		return domain.ErrDateConflict
	}

	var renterID sql.NullInt32
	if rsv.RenterID != nil {
		renterID = sql.NullInt32{Int32: *rsv.RenterID, Valid: true}
	}
	guest := guestColumns(rsv.Guest)

	query := `INSERT INTO reservations (property_id, renter_id, start_date, end_date, nights, subtotal, tax, total_price, reservation_number, status,
	            guest_first_name, guest_last_name, guest_middle_initial, guest_email, guest_credit_card)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	          RETURNING id, created_at, updated_at`
	err = tx.QueryRowContext(ctx, query,
		rsv.PropertyID, renterID, rsv.StartDate, rsv.EndDate, rsv.Nights,
		rsv.Subtotal, rsv.Tax, rsv.Total, rsv.Reference, rsv.Status,
		guest.first, guest.last, guest.middle, guest.email, guest.card,
	).Scan(&rsv.ID, &rsv.CreatedAt, &rsv.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrReferenceCollision
		}
		return err
	}

	return tx.Commit()
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	return scanReservation(r.db.QueryRowContext(ctx, query, id))
}

func (r *reservationRepository) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_number = $1`
	return scanReservation(r.db.QueryRowContext(ctx, query, reference))
}

func (r *reservationRepository) FindOverlapping(ctx context.Context, propertyID int32, start, end time.Time, statuses []domain.ReservationStatus) ([]domain.Reservation, error) {
	// Half-open [start_date, end_date): checkout day does not occupy the
	// night, so abutting stays never match.
	query := `SELECT ` + reservationColumns + ` FROM reservations
	          WHERE property_id = $1 AND status = ANY($2) AND start_date < $4 AND end_date > $3
	          ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, propertyID, statusArray(statuses), start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) (*domain.Reservation, error) {
	query := `UPDATE reservations SET status = $1, updated_at = now() WHERE id = $2 RETURNING ` + reservationColumns
	return scanReservation(r.db.QueryRowContext(ctx, query, status, id))
}

func (r *reservationRepository) UpdateFields(ctx context.Context, id int32, fields map[string]any) (*domain.Reservation, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	cols := make([]string, 0, len(fields))
	for col := range fields {
		if !reservationMutableFields[col] {
			return nil, domain.Validationf("field %q is not updatable", col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	set := ""
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		set += fmt.Sprintf("%s = $%d, ", col, i+1)
		args = append(args, fields[col])
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE reservations SET %supdated_at = now() WHERE id = $%d RETURNING `+reservationColumns, set, len(args))
	return scanReservation(r.db.QueryRowContext(ctx, query, args...))
}

func (r *reservationRepository) ListByRenter(ctx context.Context, renterID int32) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE renter_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, renterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

func (r *reservationRepository) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE property_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

type guestCols struct {
	first, last, middle, email, card sql.NullString
}

func guestColumns(g *domain.GuestContact) guestCols {
	if g == nil {
		return guestCols{}
	}
	return guestCols{
		first:  nullString(g.FirstName),
		last:   nullString(g.LastName),
		middle: nullString(g.MiddleInitial),
		email:  nullString(g.Email),
		card:   nullString(g.PaymentToken),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func statusArray(statuses []domain.ReservationStatus) pq.StringArray {
	out := make(pq.StringArray, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationRow(s rowScanner) (*domain.Reservation, error) {
	rsv := &domain.Reservation{}
	var renterID sql.NullInt32
	var g guestCols
	err := s.Scan(&rsv.ID, &rsv.PropertyID, &renterID, &rsv.StartDate, &rsv.EndDate, &rsv.Nights,
		&rsv.Subtotal, &rsv.Tax, &rsv.Total, &rsv.Reference, &rsv.Status,
		&g.first, &g.last, &g.middle, &g.email, &g.card, &rsv.CreatedAt, &rsv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if renterID.Valid {
		rsv.RenterID = &renterID.Int32
	}
	if g.first.Valid || g.last.Valid || g.email.Valid {
		rsv.Guest = &domain.GuestContact{
			FirstName:     g.first.String,
			LastName:      g.last.String,
			MiddleInitial: g.middle.String,
			Email:         g.email.String,
			PaymentToken:  g.card.String,
		}
	}
	return rsv, nil
}

func scanReservation(row *sql.Row) (*domain.Reservation, error) {
	rsv, err := scanReservationRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return rsv, err
}

func collectReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for rows.Next() {
		rsv, err := scanReservationRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rsv)
	}
	return out, rows.Err()
}
