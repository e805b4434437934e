package service

import (
	"context"
	"fmt"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/repository/ports"
)

type BookingService struct {
	bookings ports.BookingRepository
	hotels   ports.HotelRepository
	flights  ports.FlightRepository
}

func NewBookingService(bookingRepo ports.BookingRepository, hotelRepo ports.HotelRepository, flightRepo ports.FlightRepository) *BookingService {
	return &BookingService{
		bookings: bookingRepo,
		hotels:   hotelRepo,
		flights:  flightRepo,
	}
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingListFilter) ([]domain.Booking, error) {
	return s.bookings.List(ctx, filter)
}

// Create checks that the target hotel or flight exists and stores a confirmed
// booking. Availability and overlapping bookings are not checked.
func (s *BookingService) Create(ctx context.Context, fields domain.BookingCreateFields) (*domain.Booking, error) {
	if fields.Target.IsZero() {
		return nil, ErrInvalidBookingType
	}

	guests := 1
	if fields.Guests != nil {
		guests = *fields.Guests
	}
	if guests < 1 {
		return nil, fmt.Errorf("%w: guests must be at least 1", ErrBookingValidation)
	}
	if fields.TotalPrice < 0 {
		return nil, fmt.Errorf("%w: total_price cannot be negative", ErrBookingValidation)
	}

	itemName, err := s.resolveTarget(ctx, fields.Target)
	if err != nil {
		return nil, err
	}

	created, err := s.bookings.Create(ctx, domain.Booking{
		UserID:       fields.UserID,
		Type:         fields.Target.Kind(),
		ItemID:       fields.Target.ItemID(),
		CheckInDate:  fields.CheckInDate,
		CheckOutDate: fields.CheckOutDate,
		Guests:       guests,
		TotalPrice:   fields.TotalPrice,
		Status:       domain.BookingStatusConfirmed,
	})
	if err != nil {
		return nil, asConstraintError(err)
	}
	created.ItemName = &itemName
	return created, nil
}

// Delete removes a booking by id. Missing ids are not an error.
func (s *BookingService) Delete(ctx context.Context, id int64) error {
	return s.bookings.Delete(ctx, id)
}

func (s *BookingService) resolveTarget(ctx context.Context, target domain.BookingTarget) (string, error) {
	switch target.Kind() {
	case domain.BookingTypeHotel:
		hotel, err := s.hotels.FindByID(ctx, target.ItemID())
		if err != nil {
			if isNotFound(err) {
				return "", ErrHotelNotFound
			}
			return "", fmt.Errorf("lookup hotel %d: %w", target.ItemID(), err)
		}
		return hotel.Name, nil
	case domain.BookingTypeFlight:
		flight, err := s.flights.FindByID(ctx, target.ItemID())
		if err != nil {
			if isNotFound(err) {
				return "", ErrFlightNotFound
			}
			return "", fmt.Errorf("lookup flight %d: %w", target.ItemID(), err)
		}
		return flight.Label(), nil
	default:
		return "", ErrInvalidBookingType
	}
}
