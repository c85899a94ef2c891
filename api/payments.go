package api

import (
	"context"
	"net/http"
	"time"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/service/booking"
	"github.com/gin-gonic/gin"
)

// WebhookDeduper remembers delivered session ids so the webhook stays safe
// to retry.
type WebhookDeduper interface {
	MarkWebhookSeen(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)
}

type PaymentHandler struct {
	service  booking.BookingUseCase
	dedup    WebhookDeduper
	dedupTTL time.Duration
}

func NewPaymentHandler(service booking.BookingUseCase, dedup WebhookDeduper, dedupTTL time.Duration) *PaymentHandler {
	return &PaymentHandler{service: service, dedup: dedup, dedupTTL: dedupTTL}
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.POST("/webhook", h.webhook)
}

type webhookRequest struct {
	SessionID string `json:"session_id"`
	BookingID string `json:"booking_id"`
	Event     string `json:"event"`
}

func (h *PaymentHandler) webhook(c *gin.Context) {
	var req webhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SessionID == "" || req.BookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id and booking_id are required"})
		return
	}

	if req.Event != "checkout.session.completed" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	// MarkPaid first, dedup second: a failed delivery must leave the
	// session unmarked so the provider's retry can land. MarkPaid itself
	// is idempotent, so racing deliveries are harmless.
	b, err := h.service.MarkPaid(c.Request.Context(), req.BookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.dedup != nil {
		fresh, err := h.dedup.MarkWebhookSeen(c.Request.Context(), req.SessionID, h.dedupTTL)
		if err == nil && !fresh {
			c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "processed", "payment_status": string(b.PaymentStatus)})
}
