package repository

import (
	"context"
	"sync"
	"time"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/domain"
)

// In-memory repositories backing the development mode. Single mutex per
// repository; good enough for a stand-in, not for production traffic.

type MemoryTourRepository struct {
	mu    sync.RWMutex
	tours map[string]domain.Tour
}

func NewMemoryTourRepository() *MemoryTourRepository {
	return &MemoryTourRepository{tours: make(map[string]domain.Tour)}
}

func (r *MemoryTourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	tour.CreatedAt = now
	tour.UpdatedAt = now
	r.tours[tour.ID] = *tour
	return nil
}

func (r *MemoryTourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tours[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "tour", ID: id}
	}
	return &t, nil
}

func (r *MemoryTourRepository) List(ctx context.Context) ([]domain.Tour, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tours := make([]domain.Tour, 0, len(r.tours))
	for _, t := range r.tours {
		tours = append(tours, t)
	}
	return tours, nil
}

func (r *MemoryTourRepository) ListByHost(ctx context.Context, hostID string) ([]domain.Tour, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tours := make([]domain.Tour, 0)
	for _, t := range r.tours {
		if t.HostID == hostID {
			tours = append(tours, t)
		}
	}
	return tours, nil
}

func (r *MemoryTourRepository) Update(ctx context.Context, tour *domain.Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tours[tour.ID]; !ok {
		return &domain.NotFoundError{Entity: "tour", ID: tour.ID}
	}
	tour.UpdatedAt = time.Now().UTC()
	r.tours[tour.ID] = *tour
	return nil
}

func (r *MemoryTourRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tours[id]; !ok {
		return &domain.NotFoundError{Entity: "tour", ID: id}
	}
	delete(r.tours, id)
	return nil
}

var _ TourRepository = (*MemoryTourRepository)(nil)

type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{bookings: make(map[string]domain.Booking)}
}

func (r *MemoryBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *MemoryBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "booking", ID: id}
	}
	return &b, nil
}

func (r *MemoryBookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bookings := make([]domain.Booking, 0)
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *MemoryBookingRepository) ListByHost(ctx context.Context, hostID string) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bookings := make([]domain.Booking, 0)
	for _, b := range r.bookings {
		if b.HostID == hostID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *MemoryBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, reason string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "booking", ID: id}
	}
	b.Status = status
	if reason != "" {
		b.CancellationReason = reason
	}
	b.UpdatedAt = time.Now().UTC()
	r.bookings[id] = b
	return &b, nil
}

func (r *MemoryBookingRepository) Cancel(ctx context.Context, id, reason string, paymentStatus domain.PaymentStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "booking", ID: id}
	}
	b.Status = domain.BookingStatusCancelled
	b.PaymentStatus = paymentStatus
	if reason != "" {
		b.CancellationReason = reason
	}
	b.UpdatedAt = time.Now().UTC()
	r.bookings[id] = b
	return &b, nil
}

func (r *MemoryBookingRepository) SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "booking", ID: id}
	}
	b.PaymentStatus = status
	b.UpdatedAt = time.Now().UTC()
	r.bookings[id] = b
	return &b, nil
}

func (r *MemoryBookingRepository) CompleteConfirmedBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	completed := make([]domain.Booking, 0)
	for id, b := range r.bookings {
		if b.Status == domain.BookingStatusConfirmed && !b.Date.After(deadline) {
			b.Status = domain.BookingStatusCompleted
			b.UpdatedAt = time.Now().UTC()
			r.bookings[id] = b
			completed = append(completed, b)
		}
	}
	return completed, nil
}

var _ BookingRepository = (*MemoryBookingRepository)(nil)

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]domain.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "user", ID: id}
	}
	return &u, nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, &domain.NotFoundError{Entity: "user", ID: email}
}

var _ UserRepository = (*MemoryUserRepository)(nil)
