// Package contracttest holds behavioral suites run against every
// implementation of an outbound port, so the memory and postgres adapters
// stay interchangeable.
package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wanderlab/trip-budget-api/internal/domain"
	bookingrepoport "github.com/wanderlab/trip-budget-api/internal/ports/out/bookingrepo"
)

type CleanupFunc = func()

type BookingRepoFactory func(t *testing.T) (bookingrepoport.Repository, CleanupFunc)

func RunBookingRepo(t *testing.T, newRepo BookingRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	base := time.Unix(1_700_000_000, 0).UTC()
	seat := "12A"
	price := 420.50

	flight := domain.Booking{
		ID:                 domain.BookingID(uuid.NewString()),
		Type:               domain.BookingTypeFlight,
		ConfirmationNumber: "CONF-FL-1",
		Price:              &price,
		Flight: &domain.FlightDetails{
			Airline:       "Atlantic Air",
			FlightNumber:  "AA100",
			Departure:     domain.TravelEndpoint{Airport: "JFK", City: "New York", Date: "2026-09-01", Time: "08:00"},
			Arrival:       domain.TravelEndpoint{Airport: "LHR", City: "London", Date: "2026-09-01", Time: "20:00"},
			PassengerName: "Alex Doe",
			SeatNumber:    &seat,
		},
		CreatedAt: base,
	}
	hotel := domain.Booking{
		ID:                 domain.BookingID(uuid.NewString()),
		Type:               domain.BookingTypeHotel,
		ConfirmationNumber: "CONF-HT-1",
		Hotel: &domain.HotelDetails{
			HotelName:      "Harbor View",
			Address:        "1 Quay St",
			City:           "London",
			CheckIn:        "2026-09-01",
			CheckOut:       "2026-09-05",
			RoomType:       "double",
			GuestName:      "Alex Doe",
			NumberOfGuests: 2,
		},
		CreatedAt: base.Add(time.Minute),
	}

	if err := repo.Create(ctx, flight); err != nil {
		t.Fatalf("Create flight: %v", err)
	}
	if err := repo.Create(ctx, hotel); err != nil {
		t.Fatalf("Create hotel: %v", err)
	}

	// Duplicate IDs are rejected.
	if err := repo.Create(ctx, flight); !errors.Is(err, bookingrepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate: err=%v, want ErrAlreadyExists", err)
	}

	got, err := repo.GetByID(ctx, flight.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Type != domain.BookingTypeFlight || got.ConfirmationNumber != "CONF-FL-1" {
		t.Fatalf("GetByID returned %+v", got)
	}
	if got.Flight == nil || got.Flight.PassengerName != "Alex Doe" || got.Flight.SeatNumber == nil || *got.Flight.SeatNumber != "12A" {
		t.Fatalf("flight details lost: %+v", got.Flight)
	}
	if got.Price == nil || *got.Price != price {
		t.Fatalf("price lost: %v", got.Price)
	}
	if got.Hotel != nil || got.Car != nil || got.Ticket != nil {
		t.Fatalf("unexpected detail structs: %+v", got)
	}

	// List is ordered by creation time then id.
	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].ID != flight.ID || all[1].ID != hotel.ID {
		t.Fatalf("List = %v, want [flight hotel]", ids(all))
	}

	flights, err := repo.ListByType(ctx, domain.BookingTypeFlight)
	if err != nil {
		t.Fatalf("ListByType: %v", err)
	}
	if len(flights) != 1 || flights[0].ID != flight.ID {
		t.Fatalf("ListByType(flight) = %v", ids(flights))
	}
	none, err := repo.ListByType(ctx, domain.BookingTypeCar)
	if err != nil {
		t.Fatalf("ListByType(car): %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("ListByType(car) = %v, want empty", ids(none))
	}

	if err := repo.Delete(ctx, flight.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, flight.ID); !errors.Is(err, bookingrepoport.ErrNotFound) {
		t.Fatalf("Delete twice: err=%v, want ErrNotFound", err)
	}
	if _, err := repo.GetByID(ctx, flight.ID); !errors.Is(err, bookingrepoport.ErrNotFound) {
		t.Fatalf("GetByID after delete: err=%v, want ErrNotFound", err)
	}
	all, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List after delete: %v", err)
	}
	if len(all) != 1 || all[0].ID != hotel.ID {
		t.Fatalf("List after delete = %v, want [hotel]", ids(all))
	}
}

func ids(bs []domain.Booking) []domain.BookingID {
	out := make([]domain.BookingID, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.ID)
	}
	return out
}
