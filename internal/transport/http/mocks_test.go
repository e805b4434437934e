package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, fields domain.UserCreateFields) (*domain.User, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockDestinationService struct {
	mock.Mock
}

func (m *MockDestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *MockDestinationService) Get(ctx context.Context, id int64) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

type MockHotelService struct {
	mock.Mock
}

func (m *MockHotelService) List(ctx context.Context, filter domain.HotelListFilter) ([]domain.Hotel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelService) Get(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

type MockFlightService struct {
	mock.Mock
}

func (m *MockFlightService) List(ctx context.Context, filter domain.FlightListFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightService) Get(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) List(ctx context.Context, filter domain.BookingListFilter) ([]domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingService) Create(ctx context.Context, fields domain.BookingCreateFields) (*domain.Booking, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
