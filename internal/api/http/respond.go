package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/logger"
)

type errorResponse struct {
	Error     string               `json:"error"`
	Conflicts []domain.Reservation `json:"conflicts,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps engine error kinds onto HTTP statuses. The engine never
// swallows an error; everything surfaces here with a specific status.
func writeError(w http.ResponseWriter, err error) {
	var conflictErr *domain.ConflictError

	switch {
	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusConflict, errorResponse{Error: domain.ErrDateConflict.Error(), Conflicts: conflictErr.Conflicts})
	case errors.Is(err, domain.ErrDateConflict), errors.Is(err, domain.ErrAlreadyCancelled):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidRange), errors.Is(err, domain.ErrLeadTime):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrReferenceCollision):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.Validationf("malformed request body")
	}
	return nil
}
