package domain

import (
	"errors"
	"fmt"
	"time"
)

type BookingType string

const (
	BookingTypeHotel  BookingType = "hotel"
	BookingTypeFlight BookingType = "flight"
)

const BookingStatusConfirmed = "confirmed"

var ErrUnknownBookingType = errors.New("type must be either \"hotel\" or \"flight\"")

// ParseBookingType accepts exactly "hotel" or "flight".
func ParseBookingType(raw string) (BookingType, error) {
	switch BookingType(raw) {
	case BookingTypeHotel:
		return BookingTypeHotel, nil
	case BookingTypeFlight:
		return BookingTypeFlight, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrUnknownBookingType, raw)
	}
}

// BookingTarget is the item a booking points at: a hotel id or a flight id.
// The zero value is invalid; build one with NewHotelTarget or NewFlightTarget.
type BookingTarget struct {
	kind   BookingType
	itemID int64
}

func NewHotelTarget(hotelID int64) BookingTarget {
	return BookingTarget{kind: BookingTypeHotel, itemID: hotelID}
}

func NewFlightTarget(flightID int64) BookingTarget {
	return BookingTarget{kind: BookingTypeFlight, itemID: flightID}
}

func NewBookingTarget(kind BookingType, itemID int64) (BookingTarget, error) {
	switch kind {
	case BookingTypeHotel:
		return NewHotelTarget(itemID), nil
	case BookingTypeFlight:
		return NewFlightTarget(itemID), nil
	default:
		return BookingTarget{}, fmt.Errorf("%w: got %q", ErrUnknownBookingType, kind)
	}
}

func (t BookingTarget) Kind() BookingType { return t.kind }
func (t BookingTarget) ItemID() int64     { return t.itemID }
func (t BookingTarget) IsZero() bool      { return t.kind == "" }

type Booking struct {
	ID           int64       `db:"id" json:"id"`
	UserID       *int64      `db:"user_id" json:"user_id"`
	Type         BookingType `db:"type" json:"type"`
	ItemID       int64       `db:"item_id" json:"item_id"`
	CheckInDate  *string     `db:"check_in_date" json:"check_in_date"`
	CheckOutDate *string     `db:"check_out_date" json:"check_out_date"`
	Guests       int         `db:"guests" json:"guests"`
	TotalPrice   float64     `db:"total_price" json:"total_price"`
	Status       string      `db:"status" json:"status"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`

	// Hotel name or "<airline> - <from> to <to>"; null when the item no longer resolves.
	ItemName *string `db:"item_name" json:"item_name"`
}

func (b Booking) Target() BookingTarget {
	return BookingTarget{kind: b.Type, itemID: b.ItemID}
}

type BookingCreateFields struct {
	UserID       *int64
	Target       BookingTarget
	CheckInDate  *string
	CheckOutDate *string
	Guests       *int
	TotalPrice   float64
}

type BookingListFilter struct {
	UserID *int64
	Types  []BookingType
}
