package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/domain"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	bookings := router.Group("/bookings")
	{
		bookings.POST("", h.create)
		bookings.GET("/:id", h.get)
		bookings.POST("/:id/confirm", h.confirm)
		bookings.POST("/:id/cancel", h.cancel)
		bookings.PATCH("/:id/status", h.updateStatus)
		bookings.POST("/:id/checkout", h.checkout)
	}
	customers := router.Group("/customers")
	{
		customers.GET("/:id/bookings", h.listByCustomer)
		customers.GET("/:id/stats", h.stats)
	}
	router.GET("/hosts/:id/bookings", h.listByHost)
}

type createBookingRequest struct {
	TourID          string `json:"tour_id"`
	CustomerID      string `json:"customer_id"`
	Date            string `json:"date"`
	Participants    int    `json:"participants"`
	SpecialRequests string `json:"special_requests"`
}

type cancelBookingRequest struct {
	Reason string `json:"reason"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type bookingResponse struct {
	ID               string `json:"id"`
	TourID           string `json:"tour_id"`
	CustomerID       string `json:"customer_id"`
	HostID           string `json:"host_id"`
	Date             string `json:"date"`
	Participants     int    `json:"participants"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	Currency         string `json:"currency"`
	Status           string `json:"status"`
	PaymentStatus    string `json:"payment_status"`
	SpecialRequests  string `json:"special_requests,omitempty"`
	RefundCents      int64  `json:"refund_cents,omitempty"`
	CreatedAt        string `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:               b.ID,
		TourID:           b.TourID,
		CustomerID:       b.CustomerID,
		HostID:           b.HostID,
		Date:             b.Date.Format(time.RFC3339),
		Participants:     b.Participants,
		TotalAmountCents: b.TotalAmountCents,
		Currency:         b.Currency,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		SpecialRequests:  b.SpecialRequests,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC3339"})
			return
		}
		date = parsed
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		TourID:          req.TourID,
		CustomerID:      req.CustomerID,
		Date:            date,
		Participants:    req.Participants,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) get(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) confirm(c *gin.Context) {
	b, err := h.service.ConfirmBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	var req cancelBookingRequest
	if c.Request.Body != nil {
		_ = c.ShouldBindJSON(&req)
	}

	result, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := toBookingResponse(result.Booking)
	resp.RefundCents = result.RefundCents
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.UpdateBookingStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(strings.ToUpper(req.Status)))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) checkout(c *gin.Context) {
	session, err := h.service.Checkout(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func bookingFilterFromQuery(c *gin.Context) domain.BookingFilter {
	filter := domain.BookingFilter{
		Status:        domain.BookingStatus(strings.ToUpper(c.Query("status"))),
		PaymentStatus: domain.PaymentStatus(strings.ToUpper(c.Query("payment_status"))),
	}
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.DateFrom = t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.DateTo = t
		}
	}
	return filter
}

func (h *BookingHandler) listByCustomer(c *gin.Context) {
	bookings, err := h.service.ListCustomerBookings(c.Request.Context(), c.Param("id"), bookingFilterFromQuery(c), domain.SortKey(c.Query("sort")))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) listByHost(c *gin.Context) {
	bookings, err := h.service.ListHostBookings(c.Request.Context(), c.Param("id"), bookingFilterFromQuery(c), domain.SortKey(c.Query("sort")))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) stats(c *gin.Context) {
	stats, err := h.service.CustomerStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
