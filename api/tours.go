package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/domain"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/service/tours"
	"github.com/gin-gonic/gin"
)

type TourHandler struct {
	service tours.TourUseCase
}

func NewTourHandler(service tours.TourUseCase) *TourHandler {
	return &TourHandler{service: service}
}

func (h *TourHandler) Register(router *gin.RouterGroup) {
	tours := router.Group("/tours")
	{
		tours.GET("", h.list)
		tours.GET("/:id", h.get)
		tours.POST("", h.create)
		tours.PUT("/:id", h.update)
		tours.DELETE("/:id", h.delete)
	}
	router.GET("/hosts/:id/tours", h.listByHost)
}

type tourRequest struct {
	HostID             string   `json:"host_id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Location           string   `json:"location"`
	PriceCents         int64    `json:"price_cents"`
	OriginalPriceCents int64    `json:"original_price_cents"`
	Currency           string   `json:"currency"`
	DurationHours      int      `json:"duration_hours"`
	MaxParticipants    int      `json:"max_participants"`
	Difficulty         string   `json:"difficulty"`
	Included           []string `json:"included"`
	Excluded           []string `json:"excluded"`
	Tags               []string `json:"tags"`
}

func (r *tourRequest) toDomain() *domain.Tour {
	return &domain.Tour{
		HostID:             r.HostID,
		Title:              r.Title,
		Description:        r.Description,
		Location:           r.Location,
		PriceCents:         r.PriceCents,
		OriginalPriceCents: r.OriginalPriceCents,
		Currency:           r.Currency,
		DurationHours:      r.DurationHours,
		MaxParticipants:    r.MaxParticipants,
		Difficulty:         domain.Difficulty(strings.ToUpper(r.Difficulty)),
		Included:           r.Included,
		Excluded:           r.Excluded,
		Tags:               r.Tags,
	}
}

func tourFilterFromQuery(c *gin.Context) domain.TourFilter {
	filter := domain.TourFilter{
		Location:   c.Query("location"),
		Difficulty: domain.Difficulty(strings.ToUpper(c.Query("difficulty"))),
		Search:     c.Query("q"),
	}
	if v := c.Query("min_rating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = rating
		}
	}
	if v := c.Query("min_price"); v != "" {
		if price, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.MinPriceCents = price
		}
	}
	if v := c.Query("max_price"); v != "" {
		if price, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.MaxPriceCents = price
		}
	}
	if v := c.Query("tags"); v != "" {
		filter.Tags = strings.Split(v, ",")
	}
	return filter
}

func (h *TourHandler) list(c *gin.Context) {
	filter := tourFilterFromQuery(c)
	tours, err := h.service.List(c.Request.Context(), filter, domain.SortKey(c.Query("sort")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

func (h *TourHandler) listByHost(c *gin.Context) {
	tours, err := h.service.ListByHost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

func (h *TourHandler) get(c *gin.Context) {
	tour, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (h *TourHandler) create(c *gin.Context) {
	var req tourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tour := req.toDomain()
	if err := h.service.Create(c.Request.Context(), tour); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tour)
}

func (h *TourHandler) update(c *gin.Context) {
	var req tourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tour := req.toDomain()
	tour.ID = c.Param("id")
	if err := h.service.Update(c.Request.Context(), tour); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

func (h *TourHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
