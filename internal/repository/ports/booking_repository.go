package ports

import (
	"context"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
)

// BookingRepository persists bookings. Delete does not report missing rows.
type BookingRepository interface {
	Create(ctx context.Context, booking domain.Booking) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingListFilter) ([]domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}
