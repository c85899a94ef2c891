package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/domain"
	"github.com/google/uuid"
)

// CheckoutSession is what the provider hands back for a booking payment.
// The customer is redirected to URL; completion lands on the webhook.
type CheckoutSession struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	BookingID   string    `json:"booking_id"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type Provider interface {
	CreateCheckoutSession(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*CheckoutSession, error)
}

// MockProvider stands in for Stripe. Sessions are not persisted; the mock
// checkout page posts straight back to the webhook endpoint.
type MockProvider struct {
	baseURL    string
	sessionTTL time.Duration
}

func NewMockProvider(baseURL string, sessionTTL time.Duration) *MockProvider {
	return &MockProvider{baseURL: baseURL, sessionTTL: sessionTTL}
}

func (p *MockProvider) CreateCheckoutSession(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*CheckoutSession, error) {
	if amountCents <= 0 {
		return nil, &domain.ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if currency == "" {
		return nil, &domain.ValidationError{Field: "currency", Reason: "is required"}
	}

	id := "cs_mock_" + uuid.NewString()
	return &CheckoutSession{
		ID:          id,
		URL:         fmt.Sprintf("%s/mock-checkout/%s", p.baseURL, id),
		BookingID:   metadata["booking_id"],
		AmountCents: amountCents,
		Currency:    currency,
		ExpiresAt:   time.Now().Add(p.sessionTTL),
	}, nil
}

var _ Provider = (*MockProvider)(nil)
