package service

import (
	"context"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/repository/ports"
)

type FlightService struct {
	flights ports.FlightRepository
}

func NewFlightService(flightRepo ports.FlightRepository) *FlightService {
	return &FlightService{flights: flightRepo}
}

func (s *FlightService) List(ctx context.Context, filter domain.FlightListFilter) ([]domain.Flight, error) {
	return s.flights.List(ctx, filter)
}

func (s *FlightService) Get(ctx context.Context, id int64) (*domain.Flight, error) {
	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return flight, nil
}
