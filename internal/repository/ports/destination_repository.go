package ports

import (
	"context"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
)

type DestinationRepository interface {
	List(ctx context.Context) ([]domain.Destination, error)
	FindByID(ctx context.Context, id int64) (*domain.Destination, error)
}
