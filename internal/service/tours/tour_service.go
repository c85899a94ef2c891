package tours

import (
	"context"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/domain"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/repository"
	"github.com/google/uuid"
)

type TourUseCase interface {
	List(ctx context.Context, filter domain.TourFilter, key domain.SortKey) ([]domain.Tour, error)
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	ListByHost(ctx context.Context, hostID string) ([]domain.Tour, error)
	Create(ctx context.Context, tour *domain.Tour) error
	Update(ctx context.Context, tour *domain.Tour) error
	Delete(ctx context.Context, id string) error
}

type Cache interface {
	GetTours(ctx context.Context) ([]domain.Tour, error)
	SetTours(ctx context.Context, tours []domain.Tour) error
	InvalidateTours(ctx context.Context) error
}

type TourService struct {
	repo  repository.TourRepository
	cache Cache
}

func NewTourService(repo repository.TourRepository, cache Cache) *TourService {
	return &TourService{repo: repo, cache: cache}
}

// List serves the catalog from cache when it can, then runs the
// filter/sort pipeline over the materialized slice.
func (s *TourService) List(ctx context.Context, filter domain.TourFilter, key domain.SortKey) ([]domain.Tour, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetTours(ctx); err == nil && cached != nil {
			return domain.QueryTours(cached, filter, key), nil
		}
	}

	tours, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetTours(ctx, tours)
	}
	return domain.QueryTours(tours, filter, key), nil
}

func (s *TourService) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TourService) ListByHost(ctx context.Context, hostID string) ([]domain.Tour, error) {
	return s.repo.ListByHost(ctx, hostID)
}

func (s *TourService) Create(ctx context.Context, tour *domain.Tour) error {
	if tour.ID == "" {
		tour.ID = uuid.NewString()
	}
	if err := tour.Validate(); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, tour); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *TourService) Update(ctx context.Context, tour *domain.Tour) error {
	if err := tour.Validate(); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, tour); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *TourService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *TourService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateTours(ctx)
	}
}

var _ TourUseCase = (*TourService)(nil)
