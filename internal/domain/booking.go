package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type Booking struct {
	ID                 string
	TourID             string
	CustomerID         string
	HostID             string
	Date               time.Time
	Participants       int
	TotalAmountCents   int64
	Currency           string
	Status             BookingStatus
	PaymentStatus      PaymentStatus
	SpecialRequests    string
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// IsUpcoming reports whether the experience date is still ahead of now.
func (b *Booking) IsUpcoming(now time.Time) bool {
	return b.Date.After(now)
}

// CanCancel allows cancellation only for confirmed bookings whose date has
// not passed. Past-dated bookings stay put until the completion sweep
// picks them up.
func (b *Booking) CanCancel(now time.Time) bool {
	return b.Status == BookingStatusConfirmed && b.IsUpcoming(now)
}

func (b *Booking) CanRebook() bool {
	return b.Status == BookingStatusCancelled || b.Status == BookingStatusCompleted
}

func (b *Booking) CanPay() bool {
	return b.PaymentStatus == PaymentStatusPending && b.Status != BookingStatusCancelled
}
