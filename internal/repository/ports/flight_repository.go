package ports

import (
	"context"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context, filter domain.FlightListFilter) ([]domain.Flight, error)
	FindByID(ctx context.Context, id int64) (*domain.Flight, error)
}
