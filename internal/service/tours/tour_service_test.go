package tours

import (
	"context"
	"errors"
	"testing"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTourRepository struct {
	mock.Mock
}

func (m *MockTourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func (m *MockTourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tour), args.Error(1)
}

func (m *MockTourRepository) List(ctx context.Context) ([]domain.Tour, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tour), args.Error(1)
}

func (m *MockTourRepository) ListByHost(ctx context.Context, hostID string) ([]domain.Tour, error) {
	args := m.Called(ctx, hostID)
	return args.Get(0).([]domain.Tour), args.Error(1)
}

func (m *MockTourRepository) Update(ctx context.Context, tour *domain.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func (m *MockTourRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetTours(ctx context.Context) ([]domain.Tour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tour), args.Error(1)
}

func (m *MockCache) SetTours(ctx context.Context, tours []domain.Tour) error {
	args := m.Called(ctx, tours)
	return args.Error(0)
}

func (m *MockCache) InvalidateTours(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func catalog() []domain.Tour {
	return []domain.Tour{
		{ID: "t1", Title: "Lisbon Food Walk", Location: "Lisbon", PriceCents: 6500, Rating: 4.8, Difficulty: domain.DifficultyEasy},
		{ID: "t2", Title: "Sintra Hills Hike", Location: "Sintra", PriceCents: 9000, Rating: 4.6, Difficulty: domain.DifficultyChallenging},
	}
}

func TestTourService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockTourRepository{}
	mockCache := &MockCache{}
	service := NewTourService(mockRepo, mockCache)
	ctx := context.Background()

	mockCache.On("GetTours", ctx).Return(nil, nil)
	mockRepo.On("List", ctx).Return(catalog(), nil)
	mockCache.On("SetTours", ctx, catalog()).Return(nil)

	got, err := service.List(ctx, domain.TourFilter{}, domain.SortPriceAsc)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "t1", got[0].ID)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestTourService_List_CacheHitSkipsRepo(t *testing.T) {
	mockRepo := &MockTourRepository{}
	mockCache := &MockCache{}
	service := NewTourService(mockRepo, mockCache)
	ctx := context.Background()

	mockCache.On("GetTours", ctx).Return(catalog(), nil)

	got, err := service.List(ctx, domain.TourFilter{Location: "Sintra"}, "")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t2", got[0].ID)
	mockRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestTourService_List_RepoError(t *testing.T) {
	mockRepo := &MockTourRepository{}
	mockCache := &MockCache{}
	service := NewTourService(mockRepo, mockCache)
	ctx := context.Background()

	mockCache.On("GetTours", ctx).Return(nil, nil)
	mockRepo.On("List", ctx).Return([]domain.Tour{}, errors.New("db down"))

	_, err := service.List(ctx, domain.TourFilter{}, "")

	assert.Error(t, err)
}

func TestTourService_Create_InvalidatesCache(t *testing.T) {
	mockRepo := &MockTourRepository{}
	mockCache := &MockCache{}
	service := NewTourService(mockRepo, mockCache)
	ctx := context.Background()

	tour := &domain.Tour{HostID: "h1", Title: "New Walk", PriceCents: 5000, DurationHours: 2, MaxParticipants: 6, Difficulty: domain.DifficultyEasy}
	mockRepo.On("Create", ctx, tour).Return(nil)
	mockCache.On("InvalidateTours", ctx).Return(nil)

	err := service.Create(ctx, tour)

	require.NoError(t, err)
	assert.NotEmpty(t, tour.ID)
	mockCache.AssertExpectations(t)
}

func TestTourService_Create_RejectsInvalidTour(t *testing.T) {
	mockRepo := &MockTourRepository{}
	service := NewTourService(mockRepo, nil)

	err := service.Create(context.Background(), &domain.Tour{Title: "No price"})

	assert.True(t, domain.IsValidation(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
