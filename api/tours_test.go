package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTourUseCase struct {
	mock.Mock
}

func (m *MockTourUseCase) List(ctx context.Context, filter domain.TourFilter, key domain.SortKey) ([]domain.Tour, error) {
	args := m.Called(ctx, filter, key)
	return args.Get(0).([]domain.Tour), args.Error(1)
}

func (m *MockTourUseCase) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tour), args.Error(1)
}

func (m *MockTourUseCase) ListByHost(ctx context.Context, hostID string) ([]domain.Tour, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).([]domain.Tour), args.Error(1)
}

func (m *MockTourUseCase) Create(ctx context.Context, tour *domain.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func (m *MockTourUseCase) Update(ctx context.Context, tour *domain.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func (m *MockTourUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestTourHandler_list_parsesFilters(t *testing.T) {
	mockService := &MockTourUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("GET", "/api/tours?location=Lisbon&difficulty=easy&min_rating=4.5&max_price=7000&tags=food,wine&q=walk&sort=price-asc", nil)

	expectedFilter := domain.TourFilter{
		Location:      "Lisbon",
		Difficulty:    domain.DifficultyEasy,
		MinRating:     4.5,
		MaxPriceCents: 7000,
		Tags:          []string{"food", "wine"},
		Search:        "walk",
	}
	mockService.On("List", c.Request.Context(), expectedFilter, domain.SortPriceAsc).
		Return([]domain.Tour{{ID: "t1", Title: "Lisbon Food Walk"}}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var tours []domain.Tour
	err := json.Unmarshal(w.Body.Bytes(), &tours)
	assert.NoError(t, err)
	assert.Len(t, tours, 1)
	assert.Equal(t, "t1", tours[0].ID)

	mockService.AssertExpectations(t)
}

func TestTourHandler_get_notFound(t *testing.T) {
	mockService := &MockTourUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest("GET", "/api/tours/missing", nil)

	mockService.On("GetByID", c.Request.Context(), "missing").
		Return(nil, &domain.NotFoundError{Entity: "tour", ID: "missing"})

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTourHandler_create(t *testing.T) {
	mockService := &MockTourUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(tourRequest{
		HostID:          "h1",
		Title:           "Lisbon Food Walk",
		Location:        "Lisbon",
		PriceCents:      6500,
		Currency:        "EUR",
		DurationHours:   3,
		MaxParticipants: 8,
		Difficulty:      "easy",
	})
	c.Request = httptest.NewRequest("POST", "/api/tours", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), mock.AnythingOfType("*domain.Tour")).Return(nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestTourHandler_create_invalidIs400(t *testing.T) {
	mockService := &MockTourUseCase{}
	handler := NewTourHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(tourRequest{Title: "No price"})
	c.Request = httptest.NewRequest("POST", "/api/tours", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), mock.AnythingOfType("*domain.Tour")).
		Return(&domain.ValidationError{Field: "price", Reason: "must be positive"})

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
