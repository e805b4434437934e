package service

import (
	"context"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/repository/ports"
)

type HotelService struct {
	hotels ports.HotelRepository
}

func NewHotelService(hotelRepo ports.HotelRepository) *HotelService {
	return &HotelService{hotels: hotelRepo}
}

func (s *HotelService) List(ctx context.Context, filter domain.HotelListFilter) ([]domain.Hotel, error) {
	return s.hotels.List(ctx, filter)
}

func (s *HotelService) Get(ctx context.Context, id int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return hotel, nil
}
