package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/service"
)

type ReviewHandler struct {
	reviews  service.ReviewService
	validate *validator.Validate
}

func NewReviewHandler(reviews service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviews:  reviews,
		validate: validator.New(),
	}
}

type submitReviewRequest struct {
	PropertyID int32  `json:"property_id" validate:"required,gt=0"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"max=1000"`
	Reference  string `json:"reservation_number" validate:"required"`
}

func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body submitReviewRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeError(w, domain.Validationf("%v", err))
		return
	}

	rv, err := h.reviews.SubmitReview(r.Context(), actorFrom(r), service.SubmitReviewRequest{
		PropertyID: body.PropertyID,
		Rating:     body.Rating,
		Comment:    body.Comment,
		Reference:  body.Reference,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("propertyId"); v != "" {
		propertyID, err := parseID(v)
		if err != nil {
			writeError(w, err)
			return
		}
		reviews, err := h.reviews.ListPropertyReviews(r.Context(), propertyID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reviews)
		return
	}

	if v := r.URL.Query().Get("authorId"); v != "" {
		authorID, err := parseID(v)
		if err != nil {
			writeError(w, err)
			return
		}
		reviews, err := h.reviews.ListAuthorReviews(r.Context(), authorID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reviews)
		return
	}

	writeError(w, domain.Validationf("propertyId or authorId query parameter is required"))
}

type submitRenterReviewRequest struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=1000"`
	Reference string `json:"reservation_number" validate:"required"`
}

func (h *ReviewHandler) SubmitRenterReview(w http.ResponseWriter, r *http.Request) {
	var body submitRenterReviewRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeError(w, domain.Validationf("%v", err))
		return
	}

	rv, err := h.reviews.SubmitRenterReview(r.Context(), actorFrom(r), service.SubmitRenterReviewRequest{
		Rating:    body.Rating,
		Comment:   body.Comment,
		Reference: body.Reference,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (h *ReviewHandler) ListRenterReviews(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("renterId"); v != "" {
		renterID, err := parseID(v)
		if err != nil {
			writeError(w, err)
			return
		}
		reviews, err := h.reviews.ListRenterReviews(r.Context(), renterID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reviews)
		return
	}

	if v := r.URL.Query().Get("homeownerId"); v != "" {
		homeownerID, err := parseID(v)
		if err != nil {
			writeError(w, err)
			return
		}
		reviews, err := h.reviews.ListHomeownerReviews(r.Context(), homeownerID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reviews)
		return
	}

	writeError(w, domain.Validationf("renterId or homeownerId query parameter is required"))
}
