package booking

import (
	"context"
	"log"
	"time"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/domain"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/kafka"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/payment"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, id string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id, reason string) (*CancelResult, error)
	UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	MarkPaid(ctx context.Context, id string) (*domain.Booking, error)
	Checkout(ctx context.Context, id string) (*payment.CheckoutSession, error)
	CompletePastBookings(ctx context.Context) ([]domain.Booking, error)
	ListCustomerBookings(ctx context.Context, customerID string, filter domain.BookingFilter, key domain.SortKey) ([]domain.Booking, error)
	ListHostBookings(ctx context.Context, hostID string, filter domain.BookingFilter, key domain.SortKey) ([]domain.Booking, error)
	CustomerStats(ctx context.Context, customerID string) (domain.BookingStats, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	tours              repository.TourRepository
	payments           payment.Provider
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	serviceFeePercent  int
	refundPercent      int
	now                func() time.Time
}

type CreateBookingInput struct {
	TourID          string    `json:"tour_id"`
	CustomerID      string    `json:"customer_id"`
	Date            time.Time `json:"date"`
	Participants    int       `json:"participants"`
	SpecialRequests string    `json:"special_requests"`
}

// CancelResult carries the cancelled booking together with the refund owed
// under the partial-refund policy.
type CancelResult struct {
	Booking     *domain.Booking
	RefundCents int64
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithClock replaces the wall clock; date-dependent rules become
// deterministic in tests.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func WithServiceFeePercent(percent int) BookingServiceOption {
	return func(s *BookingService) {
		s.serviceFeePercent = percent
	}
}

func WithRefundPercent(percent int) BookingServiceOption {
	return func(s *BookingService) {
		s.refundPercent = percent
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	tours repository.TourRepository,
	payments payment.Provider,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:      bookings,
		tours:         tours,
		payments:      payments,
		producer:      producer,
		bookingTopic:  bookingTopic,
		refundPercent: 80,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.TourID == "" {
		return nil, &domain.ValidationError{Field: "tour_id", Reason: "is required"}
	}
	if input.CustomerID == "" {
		return nil, &domain.ValidationError{Field: "customer_id", Reason: "is required"}
	}
	if input.Date.IsZero() {
		return nil, &domain.ValidationError{Field: "date", Reason: "is required"}
	}
	if !input.Date.After(s.now()) {
		return nil, &domain.ValidationError{Field: "date", Reason: "must be in the future"}
	}
	if input.Participants < 1 {
		return nil, &domain.ValidationError{Field: "participants", Reason: "must be at least 1"}
	}

	tour, err := s.tours.GetByID(ctx, input.TourID)
	if err != nil {
		return nil, err
	}
	if input.Participants > tour.MaxParticipants {
		return nil, &domain.ValidationError{Field: "participants", Reason: "exceeds tour capacity"}
	}

	base := tour.PriceCents * int64(input.Participants)
	total := base + base*int64(s.serviceFeePercent)/100

	booking := &domain.Booking{
		ID:               uuid.NewString(),
		TourID:           tour.ID,
		CustomerID:       input.CustomerID,
		HostID:           tour.HostID,
		Date:             input.Date,
		Participants:     input.Participants,
		TotalAmountCents: total,
		Currency:         tour.Currency,
		Status:           domain.BookingStatusPending,
		PaymentStatus:    domain.PaymentStatusPending,
		SpecialRequests:  input.SpecialRequests,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", booking, 0)
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// ConfirmBooking is the host action moving a pending booking to confirmed.
// Payment is not a prerequisite; an unpaid confirmed booking is surfaced to
// clients as payment-pending.
func (s *BookingService) ConfirmBooking(ctx context.Context, id string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.BookingStatusPending {
		return nil, &domain.InvalidStateError{Entity: "booking", State: string(current.Status), Action: "confirm"}
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, domain.BookingStatusConfirmed, "")
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_confirmed", updated, 0)
	return updated, nil
}

// CancelBooking applies the partial-refund policy: a paid booking cancelled
// while still confirmed and upcoming is refunded 80% (configurable) and its
// payment status moves to refunded.
func (s *BookingService) CancelBooking(ctx context.Context, id, reason string) (*CancelResult, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCompleted || current.Status == domain.BookingStatusCancelled {
		return nil, &domain.InvalidStateError{Entity: "booking", State: string(current.Status), Action: "cancel"}
	}
	if !current.CanCancel(s.now()) {
		return nil, &domain.InvalidStateError{Entity: "booking", State: string(current.Status), Action: "cancel"}
	}

	var refund int64
	targetPayment := current.PaymentStatus
	if current.PaymentStatus == domain.PaymentStatusPaid {
		refund = current.TotalAmountCents * int64(s.refundPercent) / 100
		targetPayment = domain.PaymentStatusRefunded
	}

	// Single write: the booking must never persist cancelled while still
	// marked paid.
	updated, err := s.bookings.Cancel(ctx, id, reason, targetPayment)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_cancelled", updated, refund)
	return &CancelResult{Booking: updated, RefundCents: refund}, nil
}

// UpdateBookingStatus routes a raw status change through the transition
// rules; an unknown status is a validation failure, a known but illegal
// transition an invalid-state one.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, &domain.ValidationError{Field: "status", Reason: "unknown value"}
	}

	switch status {
	case domain.BookingStatusConfirmed:
		return s.ConfirmBooking(ctx, id)
	case domain.BookingStatusCancelled:
		result, err := s.CancelBooking(ctx, id, "")
		if err != nil {
			return nil, err
		}
		return result.Booking, nil
	case domain.BookingStatusCompleted:
		current, err := s.bookings.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Status != domain.BookingStatusConfirmed || current.IsUpcoming(s.now()) {
			return nil, &domain.InvalidStateError{Entity: "booking", State: string(current.Status), Action: "complete"}
		}
		updated, err := s.bookings.UpdateStatus(ctx, id, domain.BookingStatusCompleted, "")
		if err != nil {
			return nil, err
		}
		s.publish(ctx, "booking_completed", updated, 0)
		return updated, nil
	default:
		current, err := s.bookings.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, &domain.InvalidStateError{Entity: "booking", State: string(current.Status), Action: "reset to pending"}
	}
}

// MarkPaid reacts to the payment webhook. It never touches Status; confirming
// stays a host action. Re-delivery of a paid notification is a no-op.
func (s *BookingService) MarkPaid(ctx context.Context, id string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.PaymentStatus == domain.PaymentStatusPaid {
		return current, nil
	}
	if !current.CanPay() {
		return nil, &domain.InvalidStateError{Entity: "booking", State: string(current.PaymentStatus), Action: "pay"}
	}

	updated, err := s.bookings.SetPaymentStatus(ctx, id, domain.PaymentStatusPaid)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_paid", updated, 0)
	return updated, nil
}

// Checkout opens a payment session for a booking that still owes payment.
func (s *BookingService) Checkout(ctx context.Context, id string) (*payment.CheckoutSession, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.CanPay() {
		return nil, &domain.InvalidStateError{Entity: "booking", State: string(current.PaymentStatus), Action: "checkout"}
	}

	return s.payments.CreateCheckoutSession(ctx, current.TotalAmountCents, current.Currency, map[string]string{
		"booking_id":  current.ID,
		"customer_id": current.CustomerID,
	})
}

// CompletePastBookings moves confirmed bookings with a past experience date
// to completed. Run periodically by the worker.
func (s *BookingService) CompletePastBookings(ctx context.Context) ([]domain.Booking, error) {
	completed, err := s.bookings.CompleteConfirmedBefore(ctx, s.now())
	if err != nil {
		return nil, err
	}
	for i := range completed {
		s.publish(ctx, "booking_completed", &completed[i], 0)
	}
	return completed, nil
}

func (s *BookingService) ListCustomerBookings(ctx context.Context, customerID string, filter domain.BookingFilter, key domain.SortKey) ([]domain.Booking, error) {
	bookings, err := s.bookings.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return domain.QueryBookings(bookings, filter, key), nil
}

func (s *BookingService) ListHostBookings(ctx context.Context, hostID string, filter domain.BookingFilter, key domain.SortKey) ([]domain.Booking, error) {
	bookings, err := s.bookings.ListByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}
	return domain.QueryBookings(bookings, filter, key), nil
}

func (s *BookingService) CustomerStats(ctx context.Context, customerID string) (domain.BookingStats, error) {
	bookings, err := s.bookings.ListByCustomer(ctx, customerID)
	if err != nil {
		return domain.BookingStats{}, err
	}
	return domain.ComputeBookingStats(bookings, s.now()), nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, refund int64) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		TourID:        booking.TourID,
		CustomerID:    booking.CustomerID,
		HostID:        booking.HostID,
		AmountCents:   booking.TotalAmountCents,
		RefundCents:   refund,
		Currency:      booking.Currency,
		Status:        string(booking.Status),
		PaymentStatus: string(booking.PaymentStatus),
		Date:          booking.Date,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", eventType, booking.ID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %s: %v", eventType, booking.ID, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
