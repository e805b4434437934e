package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/repository/ports"
)

const flightSelect = `
		SELECT id, airline, from_city, to_city, departure_time, arrival_time, price, duration, created_at
		FROM flights`

type FlightRepository struct {
	db *sqlx.DB
}

func NewFlightRepo(db *sqlx.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

func (r *FlightRepository) List(ctx context.Context, filter domain.FlightListFilter) ([]domain.Flight, error) {
	query, args := buildFlightListQuery(filter)
	flights := make([]domain.Flight, 0)
	if err := r.db.SelectContext(ctx, &flights, query, args...); err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *FlightRepository) FindByID(ctx context.Context, id int64) (*domain.Flight, error) {
	var flight domain.Flight
	if err := r.db.GetContext(ctx, &flight, flightSelect+"\n\t\tWHERE id = $1", id); err != nil {
		return nil, err
	}
	return &flight, nil
}

func buildFlightListQuery(filter domain.FlightListFilter) (string, []any) {
	var p predicates
	if filter.FromCity != nil {
		if city := strings.TrimSpace(*filter.FromCity); city != "" {
			p.add(`LOWER(from_city) LIKE ? ESCAPE '\'`, containsPattern(city))
		}
	}
	if filter.ToCity != nil {
		if city := strings.TrimSpace(*filter.ToCity); city != "" {
			p.add(`LOWER(to_city) LIKE ? ESCAPE '\'`, containsPattern(city))
		}
	}
	if filter.MinPrice != nil {
		p.add("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		p.add("price <= ?", *filter.MaxPrice)
	}

	var builder strings.Builder
	builder.WriteString(flightSelect)
	builder.WriteString(p.where())
	builder.WriteString("\n\t\tORDER BY price ASC, id ASC")
	return builder.String(), p.values()
}

var _ ports.FlightRepository = (*FlightRepository)(nil)
