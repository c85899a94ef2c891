package repository

import (
	"context"
	"errors"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TourRepository interface {
	Create(ctx context.Context, tour *domain.Tour) error
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	List(ctx context.Context) ([]domain.Tour, error)
	ListByHost(ctx context.Context, hostID string) ([]domain.Tour, error)
	Update(ctx context.Context, tour *domain.Tour) error
	Delete(ctx context.Context, id string) error
}

type PGTourRepository struct {
	db *pgxpool.Pool
}

func NewTourRepository(db *pgxpool.Pool) TourRepository {
	return &PGTourRepository{db: db}
}

const tourColumns = `id, host_id, title, description, location, price_cents, original_price_cents, currency, duration_hours, rating, review_count, max_participants, difficulty, included, excluded, tags, created_at, updated_at`

func scanTour(row pgx.Row) (*domain.Tour, error) {
	var t domain.Tour
	if err := row.Scan(&t.ID, &t.HostID, &t.Title, &t.Description, &t.Location, &t.PriceCents, &t.OriginalPriceCents, &t.Currency, &t.DurationHours, &t.Rating, &t.ReviewCount, &t.MaxParticipants, &t.Difficulty, &t.Included, &t.Excluded, &t.Tags, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PGTourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	return r.db.QueryRow(ctx, `INSERT INTO tours (id, host_id, title, description, location, price_cents, original_price_cents, currency, duration_hours, rating, review_count, max_participants, difficulty, included, excluded, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at, updated_at`,
		tour.ID, tour.HostID, tour.Title, tour.Description, tour.Location, tour.PriceCents, tour.OriginalPriceCents, tour.Currency, tour.DurationHours, tour.Rating, tour.ReviewCount, tour.MaxParticipants, tour.Difficulty, tour.Included, tour.Excluded, tour.Tags).
		Scan(&tour.CreatedAt, &tour.UpdatedAt)
}

func (r *PGTourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	row := r.db.QueryRow(ctx, `SELECT `+tourColumns+` FROM tours WHERE id=$1`, id)
	tour, err := scanTour(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: "tour", ID: id}
	}
	return tour, err
}

func (r *PGTourRepository) List(ctx context.Context) ([]domain.Tour, error) {
	rows, err := r.db.Query(ctx, `SELECT `+tourColumns+` FROM tours ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTours(rows)
}

func (r *PGTourRepository) ListByHost(ctx context.Context, hostID string) ([]domain.Tour, error) {
	rows, err := r.db.Query(ctx, `SELECT `+tourColumns+` FROM tours WHERE host_id=$1 ORDER BY created_at DESC`, hostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTours(rows)
}

func collectTours(rows pgx.Rows) ([]domain.Tour, error) {
	tours := make([]domain.Tour, 0)
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, err
		}
		tours = append(tours, *t)
	}
	return tours, rows.Err()
}

func (r *PGTourRepository) Update(ctx context.Context, tour *domain.Tour) error {
	cmd, err := r.db.Exec(ctx, `UPDATE tours SET title=$2, description=$3, location=$4, price_cents=$5, original_price_cents=$6, currency=$7, duration_hours=$8, max_participants=$9, difficulty=$10, included=$11, excluded=$12, tags=$13, updated_at=now() WHERE id=$1`,
		tour.ID, tour.Title, tour.Description, tour.Location, tour.PriceCents, tour.OriginalPriceCents, tour.Currency, tour.DurationHours, tour.MaxParticipants, tour.Difficulty, tour.Included, tour.Excluded, tour.Tags)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "tour", ID: tour.ID}
	}
	return nil
}

func (r *PGTourRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM tours WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "tour", ID: id}
	}
	return nil
}

var _ TourRepository = (*PGTourRepository)(nil)
