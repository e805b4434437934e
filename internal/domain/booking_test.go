package domain

import (
	"errors"
	"testing"
)

func TestParseBookingType(t *testing.T) {
	cases := map[string]BookingType{
		"hotel":  BookingTypeHotel,
		"flight": BookingTypeFlight,
	}
	for raw, expected := range cases {
		got, err := ParseBookingType(raw)
		if err != nil {
			t.Fatalf("ParseBookingType(%q) returned error: %v", raw, err)
		}
		if got != expected {
			t.Fatalf("ParseBookingType(%q) = %q, expected %q", raw, got, expected)
		}
	}

	for _, raw := range []string{"", "car", "hotels", "HOTEL", " hotel ", "Flight"} {
		if _, err := ParseBookingType(raw); !errors.Is(err, ErrUnknownBookingType) {
			t.Fatalf("expected ErrUnknownBookingType for %q, got %v", raw, err)
		}
	}
}

func TestBookingTarget(t *testing.T) {
	target, err := NewBookingTarget(BookingTypeFlight, 7)
	if err != nil {
		t.Fatalf("NewBookingTarget returned error: %v", err)
	}
	if target.Kind() != BookingTypeFlight || target.ItemID() != 7 {
		t.Fatalf("unexpected target %+v", target)
	}

	if _, err := NewBookingTarget("car", 1); !errors.Is(err, ErrUnknownBookingType) {
		t.Fatalf("expected ErrUnknownBookingType, got %v", err)
	}

	var zero BookingTarget
	if !zero.IsZero() {
		t.Fatal("expected zero target to report IsZero")
	}

	booking := Booking{Type: BookingTypeHotel, ItemID: 3}
	if got := booking.Target(); got != NewHotelTarget(3) {
		t.Fatalf("unexpected booking target %+v", got)
	}
}

func TestFlightLabel(t *testing.T) {
	f := Flight{Airline: "Air France", FromCity: "New York", ToCity: "Paris"}
	if got := f.Label(); got != "Air France - New York to Paris" {
		t.Fatalf("unexpected label %q", got)
	}
}
