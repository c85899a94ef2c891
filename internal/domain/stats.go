package domain

import "time"

// BookingStats is the dashboard aggregate computed from a customer's
// bookings. Recomputed on every read; nothing here is cached.
type BookingStats struct {
	Total           int   `json:"total"`
	Upcoming        int   `json:"upcoming"`
	Completed       int   `json:"completed"`
	Pending         int   `json:"pending"`
	TotalSpentCents int64 `json:"total_spent_cents"`
}

func ComputeBookingStats(bookings []Booking, now time.Time) BookingStats {
	var stats BookingStats
	stats.Total = len(bookings)
	for i := range bookings {
		b := &bookings[i]
		if b.IsUpcoming(now) && b.Status != BookingStatusCancelled {
			stats.Upcoming++
		}
		if b.Status == BookingStatusCompleted {
			stats.Completed++
		}
		if b.Status == BookingStatusPending {
			stats.Pending++
		}
		if b.PaymentStatus == PaymentStatusPaid {
			stats.TotalSpentCents += b.TotalAmountCents
		}
	}
	return stats
}
