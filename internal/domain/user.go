package domain

import "time"

type User struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      *string   `db:"name" json:"name"`
	Phone     *string   `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type UserCreateFields struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}
