package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the API HTTP router.
//
// This is intentionally a thin adapter: handlers decode/validate requests and
// delegate to the application services; routing and middleware live here.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	// Baseline production-safe middleware (minimal but useful).
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Liveness endpoint for infra checks.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/plan", s.handlePlan)

	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", s.handleListBookings)
		r.Post("/", s.handleCreateBooking)
		r.Delete("/{bookingID}", s.handleDeleteBooking)
	})

	return r
}
