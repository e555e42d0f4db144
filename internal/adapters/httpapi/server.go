package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wanderlab/trip-budget-api/internal/app/bookings"
	"github.com/wanderlab/trip-budget-api/internal/app/planner"
	"github.com/wanderlab/trip-budget-api/internal/domain"
)

const maxTripDays = 30

// Server bundles the application services the HTTP handlers delegate to.
type Server struct {
	Planner  *planner.Service
	Bookings *bookings.Service
}

func NewServer(p *planner.Service, b *bookings.Service) *Server {
	return &Server{Planner: p, Bookings: b}
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON", nil)
		return
	}

	details := map[string]any{}
	if req.Budget <= 0 {
		details["budget"] = "must be greater than zero"
	}
	if req.Days < 1 || req.Days > maxTripDays {
		details["days"] = "must be between 1 and 30"
	}
	if strings.TrimSpace(req.City) == "" {
		details["city"] = "must not be empty"
	}
	if len(details) > 0 {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid planning request", details)
		return
	}

	prefs, prios := toPlannerInputs(req.Preferences, req.Priorities)
	plan := s.Planner.Plan(planner.PlanRequest{
		Budget:      req.Budget,
		Days:        req.Days,
		City:        strings.TrimSpace(req.City),
		Preferences: prefs,
		Priorities:  prios,
	})

	writeJSON(w, r, http.StatusOK, toTravelPlanResponse(plan))
}

// toPlannerInputs maps raw request maps onto domain preferences, silently
// skipping unknown category keys. Enabled categories with no stated priority
// default to nice-to-have so the replanner always has a tier to work with.
func toPlannerInputs(rawPrefs map[string]bool, rawPrios map[string]string) (domain.Preferences, domain.Priorities) {
	prefs := domain.Preferences{}
	prios := domain.Priorities{}
	for _, cat := range domain.Categories() {
		enabled, ok := rawPrefs[string(cat)]
		if !ok {
			continue
		}
		prefs[cat] = enabled
		if !enabled {
			continue
		}
		switch p := domain.Priority(rawPrios[string(cat)]); p {
		case domain.PriorityMustHave, domain.PriorityNiceToHave, domain.PriorityOptional:
			prios[cat] = p
		default:
			prios[cat] = domain.PriorityNiceToHave
		}
	}
	return prefs, prios
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON", nil)
		return
	}

	created, err := s.Bookings.CreateBooking(r.Context(), toCreateBookingInput(req))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, toBookingResponse(created))
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	var (
		list []domain.Booking
		err  error
	)
	if t := r.URL.Query().Get("type"); t != "" {
		list, err = s.Bookings.ListBookingsByType(r.Context(), domain.BookingType(t))
	} else {
		list, err = s.Bookings.ListBookings(r.Context())
	}
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	out := make([]bookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBookingResponse(b))
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleDeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "bookingID")
	if err := s.Bookings.DeleteBooking(r.Context(), domain.BookingID(id)); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
