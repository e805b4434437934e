package service

import (
	"context"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/repository/ports"
)

type DestinationService struct {
	destinations ports.DestinationRepository
}

func NewDestinationService(destRepo ports.DestinationRepository) *DestinationService {
	return &DestinationService{destinations: destRepo}
}

func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	return s.destinations.List(ctx)
}

func (s *DestinationService) Get(ctx context.Context, id int64) (*domain.Destination, error) {
	dest, err := s.destinations.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return dest, nil
}
