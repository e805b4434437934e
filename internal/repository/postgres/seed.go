package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
)

type seedHotel struct {
	destination int
	hotel       domain.Hotel
}

func strPtr(v string) *string { return &v }

var seedDestinations = []domain.Destination{
	{Name: "Paris", Country: "France", ImageURL: strPtr("https://images.unsplash.com/photo-1502602898536-47ad22581b52?w=300"), Description: strPtr("City of Light and Love"), Rating: 4.8},
	{Name: "Tokyo", Country: "Japan", ImageURL: strPtr("https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=300"), Description: strPtr("Modern metropolis with ancient traditions"), Rating: 4.7},
	{Name: "New York", Country: "USA", ImageURL: strPtr("https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=300"), Description: strPtr("The city that never sleeps"), Rating: 4.6},
	{Name: "London", Country: "UK", ImageURL: strPtr("https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=300"), Description: strPtr("Historic capital with royal charm"), Rating: 4.5},
}

// destination is an index into seedDestinations.
var seedHotels = []seedHotel{
	{0, domain.Hotel{Name: "Hotel Le Marais", PricePerNight: 120, Rating: 4.3, ImageURL: strPtr("https://images.unsplash.com/photo-1566073771259-6a8506099945?w=300"), Amenities: strPtr("WiFi, Breakfast, Gym")}},
	{1, domain.Hotel{Name: "Tokyo Grand Hotel", PricePerNight: 180, Rating: 4.5, ImageURL: strPtr("https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=300"), Amenities: strPtr("WiFi, Spa, Restaurant")}},
	{2, domain.Hotel{Name: "Manhattan Plaza", PricePerNight: 250, Rating: 4.2, ImageURL: strPtr("https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=300"), Amenities: strPtr("WiFi, Pool, Concierge")}},
	{3, domain.Hotel{Name: "London Bridge Hotel", PricePerNight: 160, Rating: 4.4, ImageURL: strPtr("https://images.unsplash.com/photo-1587985064135-0366536eab42?w=300"), Amenities: strPtr("WiFi, Bar, Room Service")}},
}

var seedFlights = []domain.Flight{
	{Airline: "Air France", FromCity: "New York", ToCity: "Paris", DepartureTime: "14:30", ArrivalTime: "08:45+1", Price: 650, Duration: strPtr("7h 15m")},
	{Airline: "JAL", FromCity: "Los Angeles", ToCity: "Tokyo", DepartureTime: "11:00", ArrivalTime: "15:30+1", Price: 850, Duration: strPtr("11h 30m")},
	{Airline: "Delta", FromCity: "Miami", ToCity: "New York", DepartureTime: "09:15", ArrivalTime: "12:30", Price: 280, Duration: strPtr("3h 15m")},
	{Airline: "British Airways", FromCity: "Boston", ToCity: "London", DepartureTime: "20:00", ArrivalTime: "07:30+1", Price: 720, Duration: strPtr("6h 30m")},
}

// Seed loads the sample catalogue when the destinations table is empty. It
// reports whether anything was inserted.
func Seed(ctx context.Context, db *sqlx.DB) (bool, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var count int64
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM destinations`); err != nil {
		return false, fmt.Errorf("count destinations: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	const insertDestination = `
		INSERT INTO destinations (name, country, image_url, description, rating)
		VALUES (:name, :country, :image_url, :description, :rating)
		RETURNING id
	`
	destinationIDs := make([]int64, len(seedDestinations))
	for i, dest := range seedDestinations {
		stmt, args, err := tx.BindNamed(insertDestination, dest)
		if err != nil {
			return false, err
		}
		if err := tx.GetContext(ctx, &destinationIDs[i], stmt, args...); err != nil {
			return false, fmt.Errorf("insert destination %s: %w", dest.Name, err)
		}
	}

	const insertHotel = `
		INSERT INTO hotels (name, destination_id, price_per_night, rating, image_url, amenities)
		VALUES (:name, :destination_id, :price_per_night, :rating, :image_url, :amenities)
	`
	hotels := make([]domain.Hotel, 0, len(seedHotels))
	for _, seed := range seedHotels {
		hotel := seed.hotel
		hotel.DestinationID = &destinationIDs[seed.destination]
		hotels = append(hotels, hotel)
	}
	if _, err := tx.NamedExecContext(ctx, insertHotel, hotels); err != nil {
		return false, fmt.Errorf("insert hotels: %w", err)
	}

	const insertFlight = `
		INSERT INTO flights (airline, from_city, to_city, departure_time, arrival_time, price, duration)
		VALUES (:airline, :from_city, :to_city, :departure_time, :arrival_time, :price, :duration)
	`
	if _, err := tx.NamedExecContext(ctx, insertFlight, seedFlights); err != nil {
		return false, fmt.Errorf("insert flights: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
