package bookingrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderlab/trip-budget-api/internal/domain"
	"github.com/wanderlab/trip-budget-api/internal/ports/out/bookingrepo"
)

// Repo is a Postgres implementation of bookingrepo.Repository. The type-specific
// detail struct is stored as a jsonb document alongside the common columns.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const selectColumns = `external_id, booking_type, confirmation_number, price, notes, details, created_at`

func (r *Repo) Create(ctx context.Context, b domain.Booking) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	bookingUUID, err := uuid.Parse(string(b.ID))
	if err != nil {
		return fmt.Errorf("invalid booking id: %w", err)
	}
	details, err := marshalDetails(b)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO bookings (
			external_id,
			booking_type,
			confirmation_number,
			price,
			notes,
			details,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		bookingUUID,
		string(b.Type),
		b.ConfirmationNumber,
		b.Price,
		b.Notes,
		details,
		b.CreatedAt.UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return bookingrepo.ErrAlreadyExists
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.BookingID) (domain.Booking, error) {
	if r.pool == nil {
		return domain.Booking{}, errors.New("nil postgres pool")
	}
	bookingUUID, err := uuid.Parse(string(id))
	if err != nil {
		return domain.Booking{}, bookingrepo.ErrNotFound
	}

	row := r.pool.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM bookings WHERE external_id = $1`,
		bookingUUID,
	)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Booking{}, bookingrepo.ErrNotFound
		}
		return domain.Booking{}, fmt.Errorf("select booking: %w", err)
	}
	return b, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Booking, error) {
	return r.list(ctx,
		`SELECT `+selectColumns+` FROM bookings ORDER BY created_at, external_id`)
}

func (r *Repo) ListByType(ctx context.Context, t domain.BookingType) ([]domain.Booking, error) {
	return r.list(ctx,
		`SELECT `+selectColumns+` FROM bookings WHERE booking_type = $1 ORDER BY created_at, external_id`,
		string(t))
}

func (r *Repo) Delete(ctx context.Context, id domain.BookingID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	bookingUUID, err := uuid.Parse(string(id))
	if err != nil {
		return bookingrepo.ErrNotFound
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE external_id = $1`, bookingUUID)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bookingrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

func scanBooking(row pgx.Row) (domain.Booking, error) {
	var (
		bookingUUID uuid.UUID
		b           domain.Booking
		bookingType string
		details     []byte
	)
	if err := row.Scan(
		&bookingUUID,
		&bookingType,
		&b.ConfirmationNumber,
		&b.Price,
		&b.Notes,
		&details,
		&b.CreatedAt,
	); err != nil {
		return domain.Booking{}, err
	}
	b.ID = domain.BookingID(bookingUUID.String())
	b.Type = domain.BookingType(bookingType)
	if err := unmarshalDetails(&b, details); err != nil {
		return domain.Booking{}, err
	}
	b.CreatedAt = b.CreatedAt.UTC()
	return b, nil
}

func marshalDetails(b domain.Booking) ([]byte, error) {
	var detail any
	switch b.Type {
	case domain.BookingTypeFlight:
		detail = b.Flight
	case domain.BookingTypeHotel:
		detail = b.Hotel
	case domain.BookingTypeCar:
		detail = b.Car
	case domain.BookingTypeTicket:
		detail = b.Ticket
	default:
		return nil, fmt.Errorf("unknown booking type %q", b.Type)
	}
	out, err := json.Marshal(detail)
	if err != nil {
		return nil, fmt.Errorf("marshal booking details: %w", err)
	}
	return out, nil
}

func unmarshalDetails(b *domain.Booking, details []byte) error {
	var target any
	switch b.Type {
	case domain.BookingTypeFlight:
		b.Flight = &domain.FlightDetails{}
		target = b.Flight
	case domain.BookingTypeHotel:
		b.Hotel = &domain.HotelDetails{}
		target = b.Hotel
	case domain.BookingTypeCar:
		b.Car = &domain.CarRentalDetails{}
		target = b.Car
	case domain.BookingTypeTicket:
		b.Ticket = &domain.TicketDetails{}
		target = b.Ticket
	default:
		return fmt.Errorf("unknown booking type %q", b.Type)
	}
	if err := json.Unmarshal(details, target); err != nil {
		return fmt.Errorf("unmarshal booking details: %w", err)
	}
	return nil
}
