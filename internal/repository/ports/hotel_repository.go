package ports

import (
	"context"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
)

type HotelRepository interface {
	List(ctx context.Context, filter domain.HotelListFilter) ([]domain.Hotel, error)
	FindByID(ctx context.Context, id int64) (*domain.Hotel, error)
}
