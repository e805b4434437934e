package ports

import (
	"context"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, fields domain.UserCreateFields) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
