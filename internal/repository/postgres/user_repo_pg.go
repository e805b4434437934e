package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/repository/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, fields domain.UserCreateFields) (*domain.User, error) {
	const query = `
        INSERT INTO users (email, name, phone)
        VALUES ($1, $2, $3)
        RETURNING id, email, name, phone, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, fields.Email, fields.Name, fields.Phone)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, email, name, phone, created_at
        FROM users
        ORDER BY created_at DESC, id DESC
    `
	users := make([]domain.User, 0)
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
