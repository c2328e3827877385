package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/service"
)

const dateLayout = "2006-01-02"

// BookingHandler exposes the booking lifecycle over REST.
type BookingHandler struct {
	bookings service.BookingService
	validate *validator.Validate
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		validate: validator.New(),
	}
}

type createBookingRequest struct {
	PropertyID      int32  `json:"property_id" validate:"required,gt=0"`
	RenterID        *int32 `json:"renter_id" validate:"omitempty,gt=0"`
	StartDate       string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string `json:"end_date" validate:"required,datetime=2006-01-02"`
	GuestFirstName  string `json:"guest_first_name" validate:"omitempty,max=100"`
	GuestLastName   string `json:"guest_last_name" validate:"omitempty,max=100"`
	GuestMiddleInit string `json:"guest_middle_initial" validate:"omitempty,max=1"`
	GuestEmail      string `json:"guest_email" validate:"omitempty,email"`
	GuestCreditCard string `json:"guest_credit_card" validate:"omitempty,min=12,max=23"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createBookingRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeError(w, domain.Validationf("%v", err))
		return
	}

	start, _ := time.Parse(dateLayout, body.StartDate)
	end, _ := time.Parse(dateLayout, body.EndDate)

	req := service.CreateReservationRequest{
		PropertyID: body.PropertyID,
		RenterID:   body.RenterID,
		StartDate:  start,
		EndDate:    end,
	}
	if body.RenterID == nil {
		req.Guest = &domain.GuestContact{
			FirstName:     body.GuestFirstName,
			LastName:      body.GuestLastName,
			MiddleInitial: body.GuestMiddleInit,
			Email:         body.GuestEmail,
			PaymentToken:  body.GuestCreditCard,
		}
	}

	rsv, err := h.bookings.CreateReservation(r.Context(), actorFrom(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rsv)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("renterId"); v != "" {
		renterID, err := parseID(v)
		if err != nil {
			writeError(w, err)
			return
		}
		rsvs, err := h.bookings.ListByRenter(r.Context(), renterID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rsvs)
		return
	}

	if v := r.URL.Query().Get("propertyId"); v != "" {
		propertyID, err := parseID(v)
		if err != nil {
			writeError(w, err)
			return
		}
		rsvs, err := h.bookings.ListByProperty(r.Context(), propertyID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rsvs)
		return
	}

	writeError(w, domain.Validationf("renterId or propertyId query parameter is required"))
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	rsv, err := h.bookings.GetReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rsv)
}

// GetByReference backs the invoice view: lookup by the reference printed on
// the booking confirmation.
func (h *BookingHandler) GetByReference(w http.ResponseWriter, r *http.Request) {
	rsv, err := h.bookings.GetByReference(r.Context(), mux.Vars(r)["reference"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rsv)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := h.bookings.CancelReservation(r.Context(), actorFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *BookingHandler) Availability(w http.ResponseWriter, r *http.Request) {
	propertyID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	start, err := parseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, err)
		return
	}

	available, conflicts, err := h.bookings.CheckAvailability(r.Context(), propertyID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"available": available,
		"conflicts": conflicts,
	})
}

// Quote prices a window without reserving it, so the storefront can show
// the full breakdown before checkout.
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	propertyID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	start, err := parseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, err)
		return
	}

	quote, err := h.bookings.Quote(r.Context(), propertyID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func parseID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.Validationf("invalid id %q", raw)
	}
	return int32(id), nil
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, domain.Validationf("invalid date %q, expected yyyy-mm-dd", raw)
	}
	return t, nil
}
