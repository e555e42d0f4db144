package bookingrepo

import (
	"context"
	"testing"
	"time"

	"github.com/wanderlab/trip-budget-api/internal/domain"
)

func TestRepo_CloneDefendsAgainstCallerMutation(t *testing.T) {
	repo := NewRepo()
	ctx := context.Background()

	notes := "window seat please"
	seat := "4C"
	b := domain.Booking{
		ID:                 "b1",
		Type:               domain.BookingTypeFlight,
		ConfirmationNumber: "C1",
		Notes:              &notes,
		Flight: &domain.FlightDetails{
			Airline:       "Atlantic Air",
			FlightNumber:  "AA7",
			PassengerName: "Sam Lee",
			SeatNumber:    &seat,
		},
		CreatedAt: time.Unix(100, 0).UTC(),
	}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Mutating the caller's copy must not affect stored state.
	*b.Notes = "changed"
	b.Flight.PassengerName = "changed"

	got, err := repo.GetByID(ctx, "b1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if *got.Notes != "window seat please" {
		t.Fatalf("notes = %q, stored record aliased caller memory", *got.Notes)
	}
	if got.Flight.PassengerName != "Sam Lee" {
		t.Fatalf("passenger = %q, stored record aliased caller memory", got.Flight.PassengerName)
	}

	// Mutating a retrieved copy must not affect stored state either.
	*got.Flight.SeatNumber = "99Z"
	again, _ := repo.GetByID(ctx, "b1")
	if *again.Flight.SeatNumber != "4C" {
		t.Fatalf("seat = %q, reads share memory", *again.Flight.SeatNumber)
	}
}

func TestRepo_CreateEmptyIDRejected(t *testing.T) {
	repo := NewRepo()
	if err := repo.Create(context.Background(), domain.Booking{}); err == nil {
		t.Fatal("expected error for empty id")
	}
}
