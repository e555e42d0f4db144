package domain

import "time"

// BookingType tags the kind of booking record.
type BookingType string

const (
	BookingTypeFlight BookingType = "flight"
	BookingTypeHotel  BookingType = "hotel"
	BookingTypeCar    BookingType = "car"
	BookingTypeTicket BookingType = "ticket"
)

// TravelEndpoint is one side of a flight leg.
type TravelEndpoint struct {
	Airport string
	City    string
	Date    string
	Time    string
}

type FlightDetails struct {
	Airline       string
	FlightNumber  string
	Departure     TravelEndpoint
	Arrival       TravelEndpoint
	PassengerName string
	SeatNumber    *string
	BookingClass  *string
}

type HotelDetails struct {
	HotelName      string
	Address        string
	City           string
	CheckIn        string
	CheckOut       string
	RoomType       string
	GuestName      string
	NumberOfGuests int
}

type CarRentalDetails struct {
	Company         string
	VehicleType     string
	PickupLocation  string
	PickupDate      string
	PickupTime      string
	DropoffLocation string
	DropoffDate     string
	DropoffTime     string
	DriverName      string
	Insurance       *bool
}

type TicketDetails struct {
	EventName       string
	Venue           string
	City            string
	EventDate       string
	EventTime       string
	TicketType      string
	AttendeeName    string
	NumberOfTickets int
	SeatNumber      *string
}

// Booking is a user-entered travel record. Exactly one detail struct is
// non-nil and it matches Type. Bookings are entirely uncoupled from plans.
type Booking struct {
	ID   BookingID
	Type BookingType

	ConfirmationNumber string
	Price              *float64
	Notes              *string

	Flight *FlightDetails
	Hotel  *HotelDetails
	Car    *CarRentalDetails
	Ticket *TicketDetails

	CreatedAt time.Time
}
