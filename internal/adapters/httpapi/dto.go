package httpapi

import (
	"time"

	"github.com/oapi-codegen/nullable"

	"github.com/wanderlab/trip-budget-api/internal/app/bookings"
	"github.com/wanderlab/trip-budget-api/internal/domain"
)

// ---- planning ----

type planRequest struct {
	Budget      float64           `json:"budget"`
	Days        int               `json:"days"`
	City        string            `json:"city"`
	Preferences map[string]bool   `json:"preferences"`
	Priorities  map[string]string `json:"priorities"`
}

type travelPlanResponse struct {
	Budget            float64           `json:"budget"`
	TotalCost         float64           `json:"totalCost"`
	Days              int               `json:"days"`
	City              string            `json:"city"`
	Itinerary         []dayItineraryDTO `json:"itinerary"`
	IsWithinBudget    bool              `json:"isWithinBudget"`
	BudgetStatus      string            `json:"budgetStatus"`
	RePlanned         bool              `json:"rePlanned"`
	IsFeasible        bool              `json:"isFeasible"`
	MinRequiredBudget float64           `json:"minRequiredBudget"`
	Explanations      []explanationDTO  `json:"explanations"`
}

type dayItineraryDTO struct {
	Day        int           `json:"day"`
	Activities []activityDTO `json:"activities"`
	TotalCost  float64       `json:"totalCost"`
	Route      *routeInfoDTO `json:"route,omitempty"`
}

type activityDTO struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	EstimatedCost float64 `json:"estimatedCost"`
	Duration      string  `json:"duration"`
	Description   string  `json:"description"`
}

type routeInfoDTO struct {
	TotalDistance        float64            `json:"totalDistance"`
	EstimatedTravelTime  int                `json:"estimatedTravelTime"`
	Groupings            []activityGroupDTO `json:"groupings"`
	Efficiency           int                `json:"efficiency"`
	Reasoning            string             `json:"reasoning"`
	AllActivityLocations []activityStopDTO  `json:"allActivityLocations,omitempty"`
}

type activityGroupDTO struct {
	Name       string      `json:"name"`
	Activities []string    `json:"activities"`
	Center     locationDTO `json:"center"`
	Reason     string      `json:"reason"`
}

type activityStopDTO struct {
	Name     string      `json:"name"`
	Location locationDTO `json:"location"`
}

type locationDTO struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type explanationDTO struct {
	Reason string `json:"reason"`
	Detail string `json:"detail"`
	Impact string `json:"impact"`
}

func toTravelPlanResponse(p domain.TravelPlan) travelPlanResponse {
	out := travelPlanResponse{
		Budget:            p.Budget,
		TotalCost:         p.TotalCost,
		Days:              p.Days,
		City:              p.City,
		Itinerary:         make([]dayItineraryDTO, 0, len(p.Itinerary)),
		IsWithinBudget:    p.IsWithinBudget,
		BudgetStatus:      string(p.BudgetStatus),
		RePlanned:         p.RePlanned,
		IsFeasible:        p.IsFeasible,
		MinRequiredBudget: p.MinRequiredBudget,
		Explanations:      make([]explanationDTO, 0, len(p.Explanations)),
	}
	for _, day := range p.Itinerary {
		out.Itinerary = append(out.Itinerary, toDayItineraryDTO(day))
	}
	for _, e := range p.Explanations {
		out.Explanations = append(out.Explanations, explanationDTO{
			Reason: e.Reason,
			Detail: e.Detail,
			Impact: string(e.Impact),
		})
	}
	return out
}

func toDayItineraryDTO(day domain.DayItinerary) dayItineraryDTO {
	out := dayItineraryDTO{
		Day:        day.Day,
		Activities: make([]activityDTO, 0, len(day.Activities)),
		TotalCost:  day.TotalCost,
	}
	for _, a := range day.Activities {
		out.Activities = append(out.Activities, activityDTO{
			Name:          a.Name,
			Category:      string(a.Category),
			EstimatedCost: a.EstimatedCost,
			Duration:      a.Duration,
			Description:   a.Description,
		})
	}
	if day.Route != nil {
		r := routeInfoDTO{
			TotalDistance:       day.Route.TotalDistanceKm,
			EstimatedTravelTime: day.Route.EstimatedTravelMin,
			Groupings:           make([]activityGroupDTO, 0, len(day.Route.Groupings)),
			Efficiency:          day.Route.Efficiency,
			Reasoning:           day.Route.Reasoning,
		}
		for _, g := range day.Route.Groupings {
			r.Groupings = append(r.Groupings, activityGroupDTO{
				Name:       g.Name,
				Activities: g.Activities,
				Center:     toLocationDTO(g.Center),
				Reason:     g.Reason,
			})
		}
		for _, s := range day.Route.Stops {
			r.AllActivityLocations = append(r.AllActivityLocations, activityStopDTO{
				Name:     s.Name,
				Location: toLocationDTO(s.Location),
			})
		}
		out.Route = &r
	}
	return out
}

func toLocationDTO(loc domain.Location) locationDTO {
	return locationDTO{Lat: loc.Lat, Lng: loc.Lng, Address: loc.Address}
}

// ---- bookings ----

// Optional fields use nullable so an explicit JSON null and an omitted field
// both read as "unset".
type createBookingRequest struct {
	Type               string                     `json:"type"`
	ConfirmationNumber string                     `json:"confirmationNumber"`
	Price              nullable.Nullable[float64] `json:"price"`
	Notes              nullable.Nullable[string]  `json:"notes"`

	Flight *flightDetailsDTO    `json:"flight"`
	Hotel  *hotelDetailsDTO     `json:"hotel"`
	Car    *carRentalDetailsDTO `json:"car"`
	Ticket *ticketDetailsDTO    `json:"ticket"`
}

type travelEndpointDTO struct {
	Airport string `json:"airport"`
	City    string `json:"city"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

type flightDetailsDTO struct {
	Airline       string                    `json:"airline"`
	FlightNumber  string                    `json:"flightNumber"`
	Departure     travelEndpointDTO         `json:"departure"`
	Arrival       travelEndpointDTO         `json:"arrival"`
	PassengerName string                    `json:"passengerName"`
	SeatNumber    nullable.Nullable[string] `json:"seatNumber"`
	BookingClass  nullable.Nullable[string] `json:"bookingClass"`
}

type hotelDetailsDTO struct {
	HotelName      string `json:"hotelName"`
	Address        string `json:"address"`
	City           string `json:"city"`
	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	RoomType       string `json:"roomType"`
	GuestName      string `json:"guestName"`
	NumberOfGuests int    `json:"numberOfGuests"`
}

type carRentalDetailsDTO struct {
	Company         string                  `json:"company"`
	VehicleType     string                  `json:"vehicleType"`
	PickupLocation  string                  `json:"pickupLocation"`
	PickupDate      string                  `json:"pickupDate"`
	PickupTime      string                  `json:"pickupTime"`
	DropoffLocation string                  `json:"dropoffLocation"`
	DropoffDate     string                  `json:"dropoffDate"`
	DropoffTime     string                  `json:"dropoffTime"`
	DriverName      string                  `json:"driverName"`
	Insurance       nullable.Nullable[bool] `json:"insurance"`
}

type ticketDetailsDTO struct {
	EventName       string                    `json:"eventName"`
	Venue           string                    `json:"venue"`
	City            string                    `json:"city"`
	EventDate       string                    `json:"eventDate"`
	EventTime       string                    `json:"eventTime"`
	TicketType      string                    `json:"ticketType"`
	AttendeeName    string                    `json:"attendeeName"`
	NumberOfTickets int                       `json:"numberOfTickets"`
	SeatNumber      nullable.Nullable[string] `json:"seatNumber"`
}

func toCreateBookingInput(req createBookingRequest) bookings.CreateBookingInput {
	in := bookings.CreateBookingInput{
		Type:               domain.BookingType(req.Type),
		ConfirmationNumber: req.ConfirmationNumber,
		Price:              optFloat(req.Price),
		Notes:              optString(req.Notes),
	}
	if req.Flight != nil {
		in.Flight = &domain.FlightDetails{
			Airline:       req.Flight.Airline,
			FlightNumber:  req.Flight.FlightNumber,
			Departure:     toTravelEndpoint(req.Flight.Departure),
			Arrival:       toTravelEndpoint(req.Flight.Arrival),
			PassengerName: req.Flight.PassengerName,
			SeatNumber:    optString(req.Flight.SeatNumber),
			BookingClass:  optString(req.Flight.BookingClass),
		}
	}
	if req.Hotel != nil {
		in.Hotel = &domain.HotelDetails{
			HotelName:      req.Hotel.HotelName,
			Address:        req.Hotel.Address,
			City:           req.Hotel.City,
			CheckIn:        req.Hotel.CheckIn,
			CheckOut:       req.Hotel.CheckOut,
			RoomType:       req.Hotel.RoomType,
			GuestName:      req.Hotel.GuestName,
			NumberOfGuests: req.Hotel.NumberOfGuests,
		}
	}
	if req.Car != nil {
		in.Car = &domain.CarRentalDetails{
			Company:         req.Car.Company,
			VehicleType:     req.Car.VehicleType,
			PickupLocation:  req.Car.PickupLocation,
			PickupDate:      req.Car.PickupDate,
			PickupTime:      req.Car.PickupTime,
			DropoffLocation: req.Car.DropoffLocation,
			DropoffDate:     req.Car.DropoffDate,
			DropoffTime:     req.Car.DropoffTime,
			DriverName:      req.Car.DriverName,
			Insurance:       optBool(req.Car.Insurance),
		}
	}
	if req.Ticket != nil {
		in.Ticket = &domain.TicketDetails{
			EventName:       req.Ticket.EventName,
			Venue:           req.Ticket.Venue,
			City:            req.Ticket.City,
			EventDate:       req.Ticket.EventDate,
			EventTime:       req.Ticket.EventTime,
			TicketType:      req.Ticket.TicketType,
			AttendeeName:    req.Ticket.AttendeeName,
			NumberOfTickets: req.Ticket.NumberOfTickets,
			SeatNumber:      optString(req.Ticket.SeatNumber),
		}
	}
	return in
}

func toTravelEndpoint(dto travelEndpointDTO) domain.TravelEndpoint {
	return domain.TravelEndpoint{Airport: dto.Airport, City: dto.City, Date: dto.Date, Time: dto.Time}
}

type bookingResponse struct {
	ID                 string    `json:"id"`
	Type               string    `json:"type"`
	ConfirmationNumber string    `json:"confirmationNumber"`
	Price              *float64  `json:"price,omitempty"`
	Notes              *string   `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`

	Flight *flightResponseDTO `json:"flight,omitempty"`
	Hotel  *hotelDetailsDTO   `json:"hotel,omitempty"`
	Car    *carResponseDTO    `json:"car,omitempty"`
	Ticket *ticketResponseDTO `json:"ticket,omitempty"`
}

type flightResponseDTO struct {
	Airline       string            `json:"airline"`
	FlightNumber  string            `json:"flightNumber"`
	Departure     travelEndpointDTO `json:"departure"`
	Arrival       travelEndpointDTO `json:"arrival"`
	PassengerName string            `json:"passengerName"`
	SeatNumber    *string           `json:"seatNumber,omitempty"`
	BookingClass  *string           `json:"bookingClass,omitempty"`
}

type carResponseDTO struct {
	Company         string `json:"company"`
	VehicleType     string `json:"vehicleType"`
	PickupLocation  string `json:"pickupLocation"`
	PickupDate      string `json:"pickupDate"`
	PickupTime      string `json:"pickupTime"`
	DropoffLocation string `json:"dropoffLocation"`
	DropoffDate     string `json:"dropoffDate"`
	DropoffTime     string `json:"dropoffTime"`
	DriverName      string `json:"driverName"`
	Insurance       *bool  `json:"insurance,omitempty"`
}

type ticketResponseDTO struct {
	EventName       string  `json:"eventName"`
	Venue           string  `json:"venue"`
	City            string  `json:"city"`
	EventDate       string  `json:"eventDate"`
	EventTime       string  `json:"eventTime"`
	TicketType      string  `json:"ticketType"`
	AttendeeName    string  `json:"attendeeName"`
	NumberOfTickets int     `json:"numberOfTickets"`
	SeatNumber      *string `json:"seatNumber,omitempty"`
}

func toBookingResponse(b domain.Booking) bookingResponse {
	out := bookingResponse{
		ID:                 string(b.ID),
		Type:               string(b.Type),
		ConfirmationNumber: b.ConfirmationNumber,
		Price:              b.Price,
		Notes:              b.Notes,
		CreatedAt:          b.CreatedAt,
	}
	if b.Flight != nil {
		out.Flight = &flightResponseDTO{
			Airline:       b.Flight.Airline,
			FlightNumber:  b.Flight.FlightNumber,
			Departure:     fromTravelEndpoint(b.Flight.Departure),
			Arrival:       fromTravelEndpoint(b.Flight.Arrival),
			PassengerName: b.Flight.PassengerName,
			SeatNumber:    b.Flight.SeatNumber,
			BookingClass:  b.Flight.BookingClass,
		}
	}
	if b.Hotel != nil {
		h := hotelDetailsDTO{
			HotelName:      b.Hotel.HotelName,
			Address:        b.Hotel.Address,
			City:           b.Hotel.City,
			CheckIn:        b.Hotel.CheckIn,
			CheckOut:       b.Hotel.CheckOut,
			RoomType:       b.Hotel.RoomType,
			GuestName:      b.Hotel.GuestName,
			NumberOfGuests: b.Hotel.NumberOfGuests,
		}
		out.Hotel = &h
	}
	if b.Car != nil {
		out.Car = &carResponseDTO{
			Company:         b.Car.Company,
			VehicleType:     b.Car.VehicleType,
			PickupLocation:  b.Car.PickupLocation,
			PickupDate:      b.Car.PickupDate,
			PickupTime:      b.Car.PickupTime,
			DropoffLocation: b.Car.DropoffLocation,
			DropoffDate:     b.Car.DropoffDate,
			DropoffTime:     b.Car.DropoffTime,
			DriverName:      b.Car.DriverName,
			Insurance:       b.Car.Insurance,
		}
	}
	if b.Ticket != nil {
		out.Ticket = &ticketResponseDTO{
			EventName:       b.Ticket.EventName,
			Venue:           b.Ticket.Venue,
			City:            b.Ticket.City,
			EventDate:       b.Ticket.EventDate,
			EventTime:       b.Ticket.EventTime,
			TicketType:      b.Ticket.TicketType,
			AttendeeName:    b.Ticket.AttendeeName,
			NumberOfTickets: b.Ticket.NumberOfTickets,
			SeatNumber:      b.Ticket.SeatNumber,
		}
	}
	return out
}

func fromTravelEndpoint(e domain.TravelEndpoint) travelEndpointDTO {
	return travelEndpointDTO{Airport: e.Airport, City: e.City, Date: e.Date, Time: e.Time}
}

func optFloat(n nullable.Nullable[float64]) *float64 {
	if !n.IsSpecified() || n.IsNull() {
		return nil
	}
	v := n.MustGet()
	return &v
}

func optString(n nullable.Nullable[string]) *string {
	if !n.IsSpecified() || n.IsNull() {
		return nil
	}
	v := n.MustGet()
	return &v
}

func optBool(n nullable.Nullable[bool]) *bool {
	if !n.IsSpecified() || n.IsNull() {
		return nil
	}
	v := n.MustGet()
	return &v
}
