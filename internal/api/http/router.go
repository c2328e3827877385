package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the REST surface. Identity resolution runs on every
// route; guests pass through and are rejected per-route where an account or
// admin role is required.
func NewRouter(auth *AuthMiddleware, bookings *BookingHandler, reviews *ReviewHandler, admin *AdminHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(auth.Identify)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/bookings", bookings.Create).Methods(http.MethodPost)
	api.HandleFunc("/bookings", bookings.List).Methods(http.MethodGet)
	api.HandleFunc("/bookings/reference/{reference}", bookings.GetByReference).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id:[0-9]+}", bookings.Get).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id:[0-9]+}/cancel", bookings.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/properties/{id:[0-9]+}/availability", bookings.Availability).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id:[0-9]+}/quote", bookings.Quote).Methods(http.MethodGet)

	api.HandleFunc("/reviews", auth.RequireUser(reviews.Submit)).Methods(http.MethodPost)
	api.HandleFunc("/reviews", reviews.List).Methods(http.MethodGet)
	api.HandleFunc("/reviews/renter", auth.RequireUser(reviews.SubmitRenterReview)).Methods(http.MethodPost)
	api.HandleFunc("/reviews/renter", reviews.ListRenterReviews).Methods(http.MethodGet)

	adminAPI := api.PathPrefix("/admin").Subrouter()
	adminAPI.HandleFunc("/bookings", auth.RequireAdmin(admin.PatchBooking)).Methods(http.MethodPatch)
	adminAPI.HandleFunc("/reviews/{id}", auth.RequireAdmin(admin.DeleteReview)).Methods(http.MethodDelete)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return r
}
