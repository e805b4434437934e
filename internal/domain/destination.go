package domain

import "time"

type Destination struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Country     string    `db:"country" json:"country"`
	ImageURL    *string   `db:"image_url" json:"image_url"`
	Description *string   `db:"description" json:"description"`
	Rating      float64   `db:"rating" json:"rating"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
