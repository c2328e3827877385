package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/service"
)

// AdminHandler exposes the moderation surface: booking status overrides and
// review removal. Route-level RequireAdmin guards these; the services check
// the actor again.
type AdminHandler struct {
	bookings service.BookingService
	reviews  service.ReviewService
	validate *validator.Validate
}

func NewAdminHandler(bookings service.BookingService, reviews service.ReviewService) *AdminHandler {
	return &AdminHandler{
		bookings: bookings,
		reviews:  reviews,
		validate: validator.New(),
	}
}

type adminBookingPatchRequest struct {
	ID         int32   `json:"id" validate:"required,gt=0"`
	Status     *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	GuestEmail *string `json:"guest_email" validate:"omitempty,email"`
}

type adminBookingPatchResponse struct {
	Reservation  *domain.Reservation        `json:"reservation"`
	Cancellation *domain.CancellationResult `json:"cancellation,omitempty"`
}

func (h *AdminHandler) PatchBooking(w http.ResponseWriter, r *http.Request) {
	var body adminBookingPatchRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeError(w, domain.Validationf("%v", err))
		return
	}
	actor := actorFrom(r)

	// A pure status change goes through the override path so cancellations
	// report their fee figures; mixed patches use the allow-list builder.
	if body.Status != nil && body.GuestEmail == nil {
		status := domain.ReservationStatus(*body.Status)
		rsv, figures, err := h.bookings.UpdateStatus(r.Context(), actor, body.ID, status)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, adminBookingPatchResponse{Reservation: rsv, Cancellation: figures})
		return
	}

	patch := service.AdminReservationPatch{GuestEmail: body.GuestEmail}
	if body.Status != nil {
		status := domain.ReservationStatus(*body.Status)
		patch.Status = &status
	}
	rsv, err := h.bookings.PatchReservation(r.Context(), actor, body.ID, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adminBookingPatchResponse{Reservation: rsv})
}

func (h *AdminHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["id"]
	if reviewID == "" {
		writeError(w, domain.Validationf("review id is required"))
		return
	}
	if err := h.reviews.DeleteReview(r.Context(), actorFrom(r), reviewID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
