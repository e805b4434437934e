package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/repository/ports"
)

type DestinationRepository struct {
	db *sqlx.DB
}

func NewDestinationRepo(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	const query = `
		SELECT id, name, country, image_url, description, rating, created_at
		FROM destinations
		ORDER BY rating DESC, id ASC
	`
	destinations := make([]domain.Destination, 0)
	if err := r.db.SelectContext(ctx, &destinations, query); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id int64) (*domain.Destination, error) {
	const query = `
		SELECT id, name, country, image_url, description, rating, created_at
		FROM destinations
		WHERE id = $1
	`
	var dest domain.Destination
	if err := r.db.GetContext(ctx, &dest, query, id); err != nil {
		return nil, err
	}
	return &dest, nil
}

var _ ports.DestinationRepository = (*DestinationRepository)(nil)
