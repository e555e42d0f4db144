package bookingrepo

import (
	"context"

	"github.com/wanderlab/trip-budget-api/internal/domain"
)

// Repository provides access to persisted booking records.
//
// List methods return results deterministically ordered by creation time,
// then by id.
type Repository interface {
	Create(ctx context.Context, b domain.Booking) error

	GetByID(ctx context.Context, id domain.BookingID) (domain.Booking, error)

	List(ctx context.Context) ([]domain.Booking, error)
	ListByType(ctx context.Context, t domain.BookingType) ([]domain.Booking, error)

	Delete(ctx context.Context, id domain.BookingID) error
}
