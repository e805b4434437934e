package domain

import "time"

type Flight struct {
	ID            int64     `db:"id" json:"id"`
	Airline       string    `db:"airline" json:"airline"`
	FromCity      string    `db:"from_city" json:"from_city"`
	ToCity        string    `db:"to_city" json:"to_city"`
	DepartureTime string    `db:"departure_time" json:"departure_time"`
	ArrivalTime   string    `db:"arrival_time" json:"arrival_time"`
	Price         float64   `db:"price" json:"price"`
	Duration      *string   `db:"duration" json:"duration"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Label is the human readable name a booking shows for this flight.
func (f Flight) Label() string {
	return f.Airline + " - " + f.FromCity + " to " + f.ToCity
}

type FlightListFilter struct {
	FromCity *string
	ToCity   *string
	MinPrice *float64
	MaxPrice *float64
}
