package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/service"
	"swipestay-backend/internal/utils"
)

func day(d int) time.Time {
	return time.Date(2026, time.October, d, 0, 0, 0, 0, time.UTC)
}

func newRequest(t *testing.T, method, target string, body any, actor domain.Actor) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	return req.WithContext(withActor(req.Context(), actor))
}

func TestBookingHandler_Create(t *testing.T) {
	renter := domain.Actor{UserID: 3, Role: domain.UserRoleRenter}

	t.Run("Success", func(t *testing.T) {
		bookings := new(MockBookingService)
		h := NewBookingHandler(bookings)

		renterID := int32(3)
		created := &domain.Reservation{
			ID: 42, PropertyID: 7, RenterID: &renterID,
			StartDate: day(20), EndDate: day(23),
			Nights: 3, Subtotal: 300.00, Tax: 36.00, Total: 336.00,
			Reference: "RES-1791633600000-042",
			Status:    domain.ReservationStatusConfirmed,
		}
		bookings.On("CreateReservation", mock.Anything, renter, mock.AnythingOfType("service.CreateReservationRequest")).
			Return(created, nil)

		req := newRequest(t, http.MethodPost, "/api/bookings", map[string]any{
			"property_id": 7,
			"renter_id":   3,
			"start_date":  "2026-10-20",
			"end_date":    "2026-10-23",
		}, renter)
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "RES-1791633600000-042", body["reservation_number"])
		assert.Equal(t, 336.00, body["total"])
	})

	t.Run("MalformedBody", func(t *testing.T) {
		h := NewBookingHandler(new(MockBookingService))

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("BadDateFormat", func(t *testing.T) {
		h := NewBookingHandler(new(MockBookingService))

		req := newRequest(t, http.MethodPost, "/api/bookings", map[string]any{
			"property_id": 7,
			"renter_id":   3,
			"start_date":  "10/20/2026",
			"end_date":    "2026-10-23",
		}, renter)
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("DateConflict", func(t *testing.T) {
		bookings := new(MockBookingService)
		h := NewBookingHandler(bookings)

		conflict := domain.Reservation{ID: 9, PropertyID: 7, StartDate: day(21), EndDate: day(24)}
		bookings.On("CreateReservation", mock.Anything, renter, mock.Anything).
			Return(nil, &domain.ConflictError{Conflicts: []domain.Reservation{conflict}})

		req := newRequest(t, http.MethodPost, "/api/bookings", map[string]any{
			"property_id": 7,
			"renter_id":   3,
			"start_date":  "2026-10-20",
			"end_date":    "2026-10-23",
		}, renter)
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)

		var body errorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Len(t, body.Conflicts, 1)
		assert.Equal(t, int32(9), body.Conflicts[0].ID)
	})

	t.Run("LeadTimeViolation", func(t *testing.T) {
		bookings := new(MockBookingService)
		h := NewBookingHandler(bookings)

		bookings.On("CreateReservation", mock.Anything, renter, mock.Anything).
			Return(nil, domain.ErrLeadTime)

		req := newRequest(t, http.MethodPost, "/api/bookings", map[string]any{
			"property_id": 7,
			"renter_id":   3,
			"start_date":  "2026-10-12",
			"end_date":    "2026-10-14",
		}, renter)
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("GuestCheckoutPassesContact", func(t *testing.T) {
		bookings := new(MockBookingService)
		h := NewBookingHandler(bookings)

		var captured service.CreateReservationRequest
		bookings.On("CreateReservation", mock.Anything, domain.Actor{IsGuest: true}, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(2).(service.CreateReservationRequest)
			}).
			Return(&domain.Reservation{ID: 43}, nil)

		req := newRequest(t, http.MethodPost, "/api/bookings", map[string]any{
			"property_id":       7,
			"start_date":        "2026-10-20",
			"end_date":          "2026-10-23",
			"guest_first_name":  "Ada",
			"guest_last_name":   "Byron",
			"guest_email":       "ada@example.com",
			"guest_credit_card": "4111111111111111",
		}, domain.Actor{IsGuest: true})
		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Nil(t, captured.RenterID)
		assert.NotNil(t, captured.Guest)
		assert.Equal(t, "4111111111111111", captured.Guest.PaymentToken)
	})
}

func TestBookingHandler_Cancel(t *testing.T) {
	renter := domain.Actor{UserID: 3, Role: domain.UserRoleRenter}

	t.Run("ReportsFeeSplit", func(t *testing.T) {
		bookings := new(MockBookingService)
		h := NewBookingHandler(bookings)

		bookings.On("CancelReservation", mock.Anything, renter, int32(42)).
			Return(&domain.CancellationResult{
				Reference:       "RES-1791633600000-042",
				Total:           336.00,
				CancellationFee: 10.08,
				Refund:          325.92,
			}, nil)

		req := newRequest(t, http.MethodPost, "/api/bookings/42/cancel", nil, renter)
		req = mux.SetURLVars(req, map[string]string{"id": "42"})
		rr := httptest.NewRecorder()
		h.Cancel(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body domain.CancellationResult
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, 10.08, body.CancellationFee)
		assert.Equal(t, 325.92, body.Refund)
	})

	t.Run("AlreadyCancelled", func(t *testing.T) {
		bookings := new(MockBookingService)
		h := NewBookingHandler(bookings)

		bookings.On("CancelReservation", mock.Anything, renter, int32(42)).
			Return(nil, domain.ErrAlreadyCancelled)

		req := newRequest(t, http.MethodPost, "/api/bookings/42/cancel", nil, renter)
		req = mux.SetURLVars(req, map[string]string{"id": "42"})
		rr := httptest.NewRecorder()
		h.Cancel(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestBookingHandler_Availability(t *testing.T) {
	guest := domain.Actor{IsGuest: true}

	t.Run("TakenWindow", func(t *testing.T) {
		bookings := new(MockBookingService)
		h := NewBookingHandler(bookings)

		conflict := domain.Reservation{ID: 9, PropertyID: 7, StartDate: day(21), EndDate: day(24)}
		bookings.On("CheckAvailability", mock.Anything, int32(7), day(20), day(23)).
			Return(false, []domain.Reservation{conflict}, nil)

		req := newRequest(t, http.MethodGet, "/api/properties/7/availability?start=2026-10-20&end=2026-10-23", nil, guest)
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		rr := httptest.NewRecorder()
		h.Availability(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Available bool                 `json:"available"`
			Conflicts []domain.Reservation `json:"conflicts"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Available)
		assert.Len(t, body.Conflicts, 1)
	})

	t.Run("MissingDates", func(t *testing.T) {
		h := NewBookingHandler(new(MockBookingService))

		req := newRequest(t, http.MethodGet, "/api/properties/7/availability", nil, guest)
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		rr := httptest.NewRecorder()
		h.Availability(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestBookingHandler_Quote(t *testing.T) {
	guest := domain.Actor{IsGuest: true}

	t.Run("ReturnsBreakdown", func(t *testing.T) {
		bookings := new(MockBookingService)
		h := NewBookingHandler(bookings)

		bookings.On("Quote", mock.Anything, int32(7), day(20), day(23)).
			Return(&utils.Quote{Nights: 3, Subtotal: 300.00, Tax: 36.00, Total: 336.00}, nil)

		req := newRequest(t, http.MethodGet, "/api/properties/7/quote?start=2026-10-20&end=2026-10-23", nil, guest)
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		rr := httptest.NewRecorder()
		h.Quote(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body utils.Quote
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, 3, body.Nights)
		assert.Equal(t, 336.00, body.Total)
	})

	t.Run("InvalidRange", func(t *testing.T) {
		bookings := new(MockBookingService)
		h := NewBookingHandler(bookings)

		bookings.On("Quote", mock.Anything, int32(7), day(23), day(20)).
			Return(nil, domain.ErrInvalidRange)

		req := newRequest(t, http.MethodGet, "/api/properties/7/quote?start=2026-10-23&end=2026-10-20", nil, guest)
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		rr := httptest.NewRecorder()
		h.Quote(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestBookingHandler_GetByReference(t *testing.T) {
	guest := domain.Actor{IsGuest: true}

	t.Run("Found", func(t *testing.T) {
		bookings := new(MockBookingService)
		h := NewBookingHandler(bookings)

		bookings.On("GetByReference", mock.Anything, "RES-1791633600000-042").
			Return(&domain.Reservation{ID: 42, Reference: "RES-1791633600000-042"}, nil)

		req := newRequest(t, http.MethodGet, "/api/bookings/reference/RES-1791633600000-042", nil, guest)
		req = mux.SetURLVars(req, map[string]string{"reference": "RES-1791633600000-042"})
		rr := httptest.NewRecorder()
		h.GetByReference(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		bookings := new(MockBookingService)
		h := NewBookingHandler(bookings)

		bookings.On("GetByReference", mock.Anything, "RES-1791633600000-999").
			Return(nil, domain.ErrNotFound)

		req := newRequest(t, http.MethodGet, "/api/bookings/reference/RES-1791633600000-999", nil, guest)
		req = mux.SetURLVars(req, map[string]string{"reference": "RES-1791633600000-999"})
		rr := httptest.NewRecorder()
		h.GetByReference(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
