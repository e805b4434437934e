package service

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
)

// --- Test doubles ---

type memoryUserRepository struct {
	users  []domain.User
	nextID int64
}

func (m *memoryUserRepository) Create(_ context.Context, fields domain.UserCreateFields) (*domain.User, error) {
	for _, existing := range m.users {
		if existing.Email == fields.Email {
			return nil, &pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "users_email_key"`}
		}
	}
	m.nextID++
	user := domain.User{
		ID:        m.nextID,
		Email:     fields.Email,
		Name:      fields.Name,
		Phone:     fields.Phone,
		CreatedAt: time.Now().UTC(),
	}
	m.users = append(m.users, user)
	return &user, nil
}

func (m *memoryUserRepository) List(_ context.Context) ([]domain.User, error) {
	out := append([]domain.User(nil), m.users...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type memoryDestinationRepository struct {
	items map[int64]*domain.Destination
}

func (m *memoryDestinationRepository) List(_ context.Context) ([]domain.Destination, error) {
	out := make([]domain.Destination, 0, len(m.items))
	for _, d := range m.items {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out, nil
}

func (m *memoryDestinationRepository) FindByID(_ context.Context, id int64) (*domain.Destination, error) {
	d, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cloned := *d
	return &cloned, nil
}

type memoryHotelRepository struct {
	items      map[int64]*domain.Hotel
	lastFilter *domain.HotelListFilter
}

// List records the filter and returns every hotel; filtering is the store's job.
func (m *memoryHotelRepository) List(_ context.Context, filter domain.HotelListFilter) ([]domain.Hotel, error) {
	m.lastFilter = &filter
	out := make([]domain.Hotel, 0, len(m.items))
	for _, h := range m.items {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryHotelRepository) FindByID(_ context.Context, id int64) (*domain.Hotel, error) {
	h, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cloned := *h
	return &cloned, nil
}

type memoryFlightRepository struct {
	items      map[int64]*domain.Flight
	lastFilter *domain.FlightListFilter
}

func (m *memoryFlightRepository) List(_ context.Context, filter domain.FlightListFilter) ([]domain.Flight, error) {
	m.lastFilter = &filter
	out := make([]domain.Flight, 0, len(m.items))
	for _, f := range m.items {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryFlightRepository) FindByID(_ context.Context, id int64) (*domain.Flight, error) {
	f, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cloned := *f
	return &cloned, nil
}

// memoryBookingRepository resolves item names against the hotel and flight
// doubles the same way the SQL CASE expression does.
type memoryBookingRepository struct {
	bookings []domain.Booking
	nextID   int64
	hotels   *memoryHotelRepository
	flights  *memoryFlightRepository
	creates  int
}

func (m *memoryBookingRepository) Create(_ context.Context, booking domain.Booking) (*domain.Booking, error) {
	m.creates++
	m.nextID++
	booking.ID = m.nextID
	booking.CreatedAt = time.Now().UTC().Add(time.Duration(m.nextID) * time.Millisecond)
	m.bookings = append(m.bookings, booking)
	cloned := booking
	return &cloned, nil
}

func (m *memoryBookingRepository) List(_ context.Context, filter domain.BookingListFilter) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0)
	for _, b := range m.bookings {
		if filter.UserID != nil && (b.UserID == nil || *b.UserID != *filter.UserID) {
			continue
		}
		if len(filter.Types) > 0 && !containsType(filter.Types, b.Type) {
			continue
		}
		switch b.Type {
		case domain.BookingTypeHotel:
			if h, ok := m.hotels.items[b.ItemID]; ok {
				name := h.Name
				b.ItemName = &name
			}
		case domain.BookingTypeFlight:
			if f, ok := m.flights.items[b.ItemID]; ok {
				label := f.Label()
				b.ItemName = &label
			}
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryBookingRepository) Delete(_ context.Context, id int64) error {
	kept := m.bookings[:0]
	for _, b := range m.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	m.bookings = kept
	return nil
}

func containsType(types []domain.BookingType, t domain.BookingType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }
func stringPtr(v string) *string    { return &v }

func newCatalog() (*memoryHotelRepository, *memoryFlightRepository) {
	parisID := int64(1)
	tokyoID := int64(2)
	hotels := &memoryHotelRepository{items: map[int64]*domain.Hotel{
		1: {ID: 1, Name: "Hotel Le Marais", DestinationID: &parisID, PricePerNight: 120, Rating: 4.3},
		2: {ID: 2, Name: "Tokyo Grand Hotel", DestinationID: &tokyoID, PricePerNight: 180, Rating: 4.5},
		3: {ID: 3, Name: "Manhattan Plaza", PricePerNight: 250, Rating: 4.2},
	}}
	flights := &memoryFlightRepository{items: map[int64]*domain.Flight{
		1: {ID: 1, Airline: "Air France", FromCity: "New York", ToCity: "Paris", Price: 650},
		2: {ID: 2, Airline: "JAL", FromCity: "Los Angeles", ToCity: "Tokyo", Price: 850},
		3: {ID: 3, Airline: "Delta", FromCity: "Miami", ToCity: "New York", Price: 280},
	}}
	return hotels, flights
}
