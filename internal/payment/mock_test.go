package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_CreateCheckoutSession(t *testing.T) {
	provider := NewMockProvider("http://localhost:8080", 30*time.Minute)

	session, err := provider.CreateCheckoutSession(context.Background(), 14300, "EUR", map[string]string{"booking_id": "b1"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(session.ID, "cs_mock_"))
	assert.Contains(t, session.URL, session.ID)
	assert.Equal(t, "b1", session.BookingID)
	assert.Equal(t, int64(14300), session.AmountCents)
	assert.True(t, session.ExpiresAt.After(time.Now()))
}

func TestMockProvider_SessionIDsAreUnique(t *testing.T) {
	provider := NewMockProvider("http://localhost:8080", time.Minute)

	a, err := provider.CreateCheckoutSession(context.Background(), 100, "EUR", nil)
	require.NoError(t, err)
	b, err := provider.CreateCheckoutSession(context.Background(), 100, "EUR", nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestMockProvider_RejectsBadInput(t *testing.T) {
	provider := NewMockProvider("http://localhost:8080", time.Minute)

	_, err := provider.CreateCheckoutSession(context.Background(), 0, "EUR", nil)
	assert.True(t, domain.IsValidation(err))

	_, err = provider.CreateCheckoutSession(context.Background(), 100, "", nil)
	assert.True(t, domain.IsValidation(err))
}
