package email

import (
	"context"
	"fmt"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/kafka"
)

// Sender is a stand-in notification channel: it prints what a real
// mailer would send for each booking event.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case "booking_cancelled":
		fmt.Printf("notify customer %s: booking %s cancelled, refund %d %s\n",
			event.CustomerID, event.BookingID, event.RefundCents, event.Currency)
	case "booking_paid":
		fmt.Printf("notify customer %s: payment of %d %s received for booking %s\n",
			event.CustomerID, event.AmountCents, event.Currency, event.BookingID)
	default:
		fmt.Printf("notify customer %s: booking %s %s (tour %s, %d %s)\n",
			event.CustomerID, event.BookingID, event.Type, event.TourID, event.AmountCents, event.Currency)
	}
	return nil
}
