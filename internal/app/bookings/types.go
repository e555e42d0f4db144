package bookings

import "github.com/wanderlab/trip-budget-api/internal/domain"

// CreateBookingInput carries a new booking record. Exactly one detail struct
// must be set and it must match Type.
type CreateBookingInput struct {
	Type               domain.BookingType
	ConfirmationNumber string
	Price              *float64
	Notes              *string

	Flight *domain.FlightDetails
	Hotel  *domain.HotelDetails
	Car    *domain.CarRentalDetails
	Ticket *domain.TicketDetails
}
