package domain

import "time"

type Hotel struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	DestinationID *int64    `db:"destination_id" json:"destination_id"`
	PricePerNight float64   `db:"price_per_night" json:"price_per_night"`
	Rating        float64   `db:"rating" json:"rating"`
	ImageURL      *string   `db:"image_url" json:"image_url"`
	Amenities     *string   `db:"amenities" json:"amenities"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`

	// Null when destination_id does not resolve.
	DestinationName *string `db:"destination_name" json:"destination_name"`
}

type HotelListFilter struct {
	DestinationID *int64
	MinPrice      *float64
	MaxPrice      *float64
}
