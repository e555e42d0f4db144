package bookingrepo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/wanderlab/trip-budget-api/internal/domain"
	"github.com/wanderlab/trip-budget-api/internal/ports/out/bookingrepo"
)

// Repo is an in-memory implementation of bookingrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.BookingID]domain.Booking
}

func NewRepo() *Repo {
	return &Repo{
		byID: make(map[domain.BookingID]domain.Booking),
	}
}

func (r *Repo) Create(ctx context.Context, b domain.Booking) error {
	_ = ctx
	if b.ID == "" {
		return errors.New("booking id must be set")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[b.ID]; ok {
		return bookingrepo.ErrAlreadyExists
	}
	r.byID[b.ID] = cloneBooking(b)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.BookingID) (domain.Booking, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[id]
	if !ok {
		return domain.Booking{}, bookingrepo.ErrNotFound
	}
	return cloneBooking(b), nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Booking, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Booking, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, cloneBooking(b))
	}
	sortBookings(out)
	return out, nil
}

func (r *Repo) ListByType(ctx context.Context, t domain.BookingType) ([]domain.Booking, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Booking, 0)
	for _, b := range r.byID {
		if b.Type == t {
			out = append(out, cloneBooking(b))
		}
	}
	sortBookings(out)
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.BookingID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return bookingrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func sortBookings(bs []domain.Booking) {
	sort.Slice(bs, func(i, j int) bool {
		if !bs[i].CreatedAt.Equal(bs[j].CreatedAt) {
			return bs[i].CreatedAt.Before(bs[j].CreatedAt)
		}
		return bs[i].ID < bs[j].ID
	})
}

func cloneBooking(b domain.Booking) domain.Booking {
	cp := b
	cp.Price = cloneFloatPtr(b.Price)
	cp.Notes = cloneStringPtr(b.Notes)
	if b.Flight != nil {
		f := *b.Flight
		f.SeatNumber = cloneStringPtr(b.Flight.SeatNumber)
		f.BookingClass = cloneStringPtr(b.Flight.BookingClass)
		cp.Flight = &f
	}
	if b.Hotel != nil {
		h := *b.Hotel
		cp.Hotel = &h
	}
	if b.Car != nil {
		c := *b.Car
		c.Insurance = cloneBoolPtr(b.Car.Insurance)
		cp.Car = &c
	}
	if b.Ticket != nil {
		tk := *b.Ticket
		tk.SeatNumber = cloneStringPtr(b.Ticket.SeatNumber)
		cp.Ticket = &tk
	}
	return cp
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBoolPtr(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
