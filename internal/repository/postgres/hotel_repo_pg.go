package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/repository/ports"
)

const hotelSelect = `
		SELECT
			h.id,
			h.name,
			h.destination_id,
			h.price_per_night,
			h.rating,
			h.image_url,
			h.amenities,
			h.created_at,
			d.name AS destination_name
		FROM hotels h
		LEFT JOIN destinations d ON d.id = h.destination_id`

type HotelRepository struct {
	db *sqlx.DB
}

func NewHotelRepo(db *sqlx.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) List(ctx context.Context, filter domain.HotelListFilter) ([]domain.Hotel, error) {
	query, args := buildHotelListQuery(filter)
	hotels := make([]domain.Hotel, 0)
	if err := r.db.SelectContext(ctx, &hotels, query, args...); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var hotel domain.Hotel
	if err := r.db.GetContext(ctx, &hotel, hotelSelect+"\n\t\tWHERE h.id = $1", id); err != nil {
		return nil, err
	}
	return &hotel, nil
}

func buildHotelListQuery(filter domain.HotelListFilter) (string, []any) {
	var p predicates
	if filter.DestinationID != nil {
		p.add("h.destination_id = ?", *filter.DestinationID)
	}
	if filter.MinPrice != nil {
		p.add("h.price_per_night >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		p.add("h.price_per_night <= ?", *filter.MaxPrice)
	}

	var builder strings.Builder
	builder.WriteString(hotelSelect)
	builder.WriteString(p.where())
	builder.WriteString("\n\t\tORDER BY h.rating DESC, h.id ASC")
	return builder.String(), p.values()
}

var _ ports.HotelRepository = (*HotelRepository)(nil)
