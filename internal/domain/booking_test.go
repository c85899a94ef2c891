package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestBooking_CanCancel(t *testing.T) {
	tests := []struct {
		name    string
		booking Booking
		want    bool
	}{
		{"confirmed upcoming", Booking{Status: BookingStatusConfirmed, Date: now.Add(48 * time.Hour)}, true},
		{"confirmed past date", Booking{Status: BookingStatusConfirmed, Date: now.Add(-48 * time.Hour)}, false},
		{"pending upcoming", Booking{Status: BookingStatusPending, Date: now.Add(48 * time.Hour)}, false},
		{"completed", Booking{Status: BookingStatusCompleted, Date: now.Add(-48 * time.Hour)}, false},
		{"cancelled", Booking{Status: BookingStatusCancelled, Date: now.Add(48 * time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.CanCancel(now))
		})
	}
}

func TestBooking_CanPay(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingStatusPending, PaymentStatus: PaymentStatusPending}).CanPay())
	assert.True(t, (&Booking{Status: BookingStatusConfirmed, PaymentStatus: PaymentStatusPending}).CanPay())
	assert.False(t, (&Booking{Status: BookingStatusCancelled, PaymentStatus: PaymentStatusPending}).CanPay())
	assert.False(t, (&Booking{Status: BookingStatusConfirmed, PaymentStatus: PaymentStatusPaid}).CanPay())
}

func TestBooking_CanRebook(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingStatusCancelled}).CanRebook())
	assert.True(t, (&Booking{Status: BookingStatusCompleted}).CanRebook())
	assert.False(t, (&Booking{Status: BookingStatusConfirmed}).CanRebook())
	assert.False(t, (&Booking{Status: BookingStatusPending}).CanRebook())
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, ValidBookingStatus(BookingStatusPending))
	assert.True(t, ValidBookingStatus(BookingStatusCancelled))
	assert.False(t, ValidBookingStatus("ARCHIVED"))
}

func TestComputeBookingStats(t *testing.T) {
	bookings := []Booking{
		{TotalAmountCents: 100, PaymentStatus: PaymentStatusPaid, Status: BookingStatusCompleted, Date: now.Add(-24 * time.Hour)},
		{TotalAmountCents: 50, PaymentStatus: PaymentStatusPending, Status: BookingStatusPending, Date: now.Add(24 * time.Hour)},
		{TotalAmountCents: 30, PaymentStatus: PaymentStatusPaid, Status: BookingStatusConfirmed, Date: now.Add(48 * time.Hour)},
		{TotalAmountCents: 80, PaymentStatus: PaymentStatusRefunded, Status: BookingStatusCancelled, Date: now.Add(72 * time.Hour)},
	}

	stats := ComputeBookingStats(bookings, now)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Upcoming) // cancelled upcoming excluded
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, int64(130), stats.TotalSpentCents)
}

func TestComputeBookingStats_Empty(t *testing.T) {
	stats := ComputeBookingStats(nil, now)

	assert.Equal(t, BookingStats{}, stats)
}

func TestTour_Validate(t *testing.T) {
	valid := Tour{HostID: "h1", Title: "Walk", PriceCents: 1000, DurationHours: 2, MaxParticipants: 5, Difficulty: DifficultyEasy}
	assert.NoError(t, valid.Validate())

	discounted := valid
	discounted.OriginalPriceCents = 1200
	assert.NoError(t, discounted.Validate())

	overpriced := valid
	overpriced.OriginalPriceCents = 500
	assert.Error(t, overpriced.Validate())

	free := valid
	free.PriceCents = 0
	assert.Error(t, free.Validate())

	unknown := valid
	unknown.Difficulty = "EXTREME"
	assert.Error(t, unknown.Validate())
}
