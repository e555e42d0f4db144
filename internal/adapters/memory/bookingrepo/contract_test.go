package bookingrepo

import (
	"testing"

	"github.com/wanderlab/trip-budget-api/internal/adapters/contracttest"
	bookingrepoport "github.com/wanderlab/trip-budget-api/internal/ports/out/bookingrepo"
)

func TestContract_MemoryBookingRepo(t *testing.T) {
	contracttest.RunBookingRepo(t, func(t *testing.T) (bookingrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(), nil
	})
}
