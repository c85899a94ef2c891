package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
	ListByHost(ctx context.Context, hostID string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, reason string) (*domain.Booking, error)
	Cancel(ctx context.Context, id, reason string, paymentStatus domain.PaymentStatus) (*domain.Booking, error)
	SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Booking, error)
	CompleteConfirmedBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, tour_id, customer_id, host_id, date, participants, total_amount_cents, currency, status, payment_status, special_requests, cancellation_reason, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.TourID, &b.CustomerID, &b.HostID, &b.Date, &b.Participants, &b.TotalAmountCents, &b.Currency, &b.Status, &b.PaymentStatus, &b.SpecialRequests, &b.CancellationReason, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.db.QueryRow(ctx, `INSERT INTO bookings (id, tour_id, customer_id, host_id, date, participants, total_amount_cents, currency, status, payment_status, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`,
		booking.ID, booking.TourID, booking.CustomerID, booking.HostID, booking.Date, booking.Participants, booking.TotalAmountCents, booking.Currency, booking.Status, booking.PaymentStatus, booking.SpecialRequests).
		Scan(&booking.CreatedAt, &booking.UpdatedAt)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "booking", ID: id}
	}
	return b, err
}

func (r *PGBookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE customer_id=$1 ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *PGBookingRepository) ListByHost(ctx context.Context, hostID string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE host_id=$1 ORDER BY created_at DESC`, hostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, reason string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$2, cancellation_reason=$3, updated_at=now() WHERE id=$1 RETURNING `+bookingColumns, id, status, reason)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "booking", ID: id}
	}
	return b, err
}

// Cancel writes the status, payment status and reason in one statement so
// the booking never lands cancelled with a stale payment status.
func (r *PGBookingRepository) Cancel(ctx context.Context, id, reason string, paymentStatus domain.PaymentStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$2, payment_status=$3, cancellation_reason=$4, updated_at=now() WHERE id=$1 RETURNING `+bookingColumns, id, domain.BookingStatusCancelled, paymentStatus, reason)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "booking", ID: id}
	}
	return b, err
}

func (r *PGBookingRepository) SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET payment_status=$2, updated_at=now() WHERE id=$1 RETURNING `+bookingColumns, id, status)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "booking", ID: id}
	}
	return b, err
}

func (r *PGBookingRepository) CompleteConfirmedBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE status=$2 AND date <= $3 RETURNING `+bookingColumns, domain.BookingStatusCompleted, domain.BookingStatusConfirmed, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

var _ BookingRepository = (*PGBookingRepository)(nil)
