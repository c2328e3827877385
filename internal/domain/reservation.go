package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// ActiveStatuses are the statuses that count toward availability conflicts.
var ActiveStatuses = []ReservationStatus{ReservationStatusPending, ReservationStatusConfirmed}

// IsTerminal reports whether no further lifecycle transition is allowed.
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCancelled || s == ReservationStatusCompleted
}

// GuestContact holds the checkout details for reservations made without an
// account. Populated only when Reservation.RenterID is nil.
type GuestContact struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	MiddleInitial string `json:"middle_initial,omitempty"`
	Email         string `json:"email"`
	PaymentToken  string `json:"-"`
}

type Reservation struct {
	ID         int32  `json:"id"`
	PropertyID int32  `json:"property_id"`
	RenterID   *int32 `json:"renter_id,omitempty"`
	// Stay window, half-open: EndDate is the checkout day, not an occupied night.
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Nights    int       `json:"nights"`
	Subtotal  float64   `json:"subtotal"`
	Tax       float64   `json:"tax"`
	Total     float64   `json:"total"`
	// Reference is the externally visible booking identifier
	// (RES-<unix-millis>-<3 digits>), assigned once at creation.
	Reference string            `json:"reservation_number"`
	Status    ReservationStatus `json:"status"`
	Guest     *GuestContact     `json:"guest,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Overlaps reports whether the reservation's stay window intersects
// [start, end). Abutting windows (checkout day == check-in day) do not
// overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && start.Before(r.EndDate)
}

// CancellationResult reports the fee split computed when a reservation is
// cancelled. The engine only reports these figures; no transfer is executed.
type CancellationResult struct {
	Reference       string  `json:"reservation_number"`
	Total           float64 `json:"total"`
	CancellationFee float64 `json:"cancellation_fee"`
	Refund          float64 `json:"refund"`
}
