// Package bookings manages user-entered travel records (flights, hotels, car
// rentals, event tickets). Records are free-standing: they have no
// relationship to generated travel plans.
package bookings

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/wanderlab/trip-budget-api/internal/domain"
	"github.com/wanderlab/trip-budget-api/internal/ports/out/bookingrepo"
	"github.com/wanderlab/trip-budget-api/internal/ports/out/clock"
)

type Service struct {
	repo bookingrepo.Repository
	clk  clock.Clock

	newBookingID func() domain.BookingID
}

func NewService(repo bookingrepo.Repository, clk clock.Clock) *Service {
	return &Service{
		repo: repo,
		clk:  clk,
		newBookingID: func() domain.BookingID {
			return domain.BookingID(uuid.NewString())
		},
	}
}

// SetNewBookingIDForTest overrides booking ID generation for deterministic tests.
// It should not be used in production code.
func (s *Service) SetNewBookingIDForTest(fn func() domain.BookingID) {
	if fn != nil {
		s.newBookingID = fn
	}
}

func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (domain.Booking, error) {
	b := domain.Booking{
		ID:                 s.newBookingID(),
		Type:               in.Type,
		ConfirmationNumber: in.ConfirmationNumber,
		Price:              in.Price,
		Notes:              in.Notes,
		Flight:             in.Flight,
		Hotel:              in.Hotel,
		Car:                in.Car,
		Ticket:             in.Ticket,
		CreatedAt:          s.clk.Now(),
	}

	if err := validate(&b); err != nil {
		return domain.Booking{}, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		if errors.Is(err, bookingrepo.ErrAlreadyExists) {
			// Extremely unlikely (UUID collision); treat as conflict.
			return domain.Booking{}, &Error{Status: 409, Code: "BOOKING_ID_CONFLICT", Message: "booking id conflict"}
		}
		return domain.Booking{}, err
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListBookingsByType(ctx context.Context, t domain.BookingType) ([]domain.Booking, error) {
	if !knownType(t) {
		return nil, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid booking type", Details: map[string]any{"type": "must be one of flight, hotel, car, ticket"}}
	}
	return s.repo.ListByType(ctx, t)
}

func (s *Service) DeleteBooking(ctx context.Context, id domain.BookingID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingrepo.ErrNotFound) {
			return &Error{Status: 404, Code: "BOOKING_NOT_FOUND", Message: "booking not found"}
		}
		return err
	}
	return nil
}

// validate checks the detail struct matches the type and normalizes the
// traveler name it carries.
func validate(b *domain.Booking) error {
	invalid := func(field, msg string) error {
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid booking", Details: map[string]any{field: msg}}
	}

	if b.ConfirmationNumber == "" {
		return invalid("confirmationNumber", "must be non-empty")
	}
	if n := detailCount(b); n != 1 {
		return invalid("details", "exactly one detail object must be provided")
	}

	switch b.Type {
	case domain.BookingTypeFlight:
		if b.Flight == nil {
			return invalid("flight", "required for type flight")
		}
		b.Flight.PassengerName = domain.NormalizeHumanName(b.Flight.PassengerName)
		if b.Flight.PassengerName == "" {
			return invalid("flight.passengerName", "must be non-empty")
		}
	case domain.BookingTypeHotel:
		if b.Hotel == nil {
			return invalid("hotel", "required for type hotel")
		}
		b.Hotel.GuestName = domain.NormalizeHumanName(b.Hotel.GuestName)
		if b.Hotel.GuestName == "" {
			return invalid("hotel.guestName", "must be non-empty")
		}
		if b.Hotel.NumberOfGuests < 1 {
			return invalid("hotel.numberOfGuests", "must be at least 1")
		}
	case domain.BookingTypeCar:
		if b.Car == nil {
			return invalid("car", "required for type car")
		}
		b.Car.DriverName = domain.NormalizeHumanName(b.Car.DriverName)
		if b.Car.DriverName == "" {
			return invalid("car.driverName", "must be non-empty")
		}
	case domain.BookingTypeTicket:
		if b.Ticket == nil {
			return invalid("ticket", "required for type ticket")
		}
		b.Ticket.AttendeeName = domain.NormalizeHumanName(b.Ticket.AttendeeName)
		if b.Ticket.AttendeeName == "" {
			return invalid("ticket.attendeeName", "must be non-empty")
		}
		if b.Ticket.NumberOfTickets < 1 {
			return invalid("ticket.numberOfTickets", "must be at least 1")
		}
	default:
		return invalid("type", "must be one of flight, hotel, car, ticket")
	}

	return nil
}

func detailCount(b *domain.Booking) int {
	n := 0
	if b.Flight != nil {
		n++
	}
	if b.Hotel != nil {
		n++
	}
	if b.Car != nil {
		n++
	}
	if b.Ticket != nil {
		n++
	}
	return n
}

func knownType(t domain.BookingType) bool {
	switch t {
	case domain.BookingTypeFlight, domain.BookingTypeHotel, domain.BookingTypeCar, domain.BookingTypeTicket:
		return true
	}
	return false
}
