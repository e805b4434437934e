package http

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
)

func parseOptionalInt64(c echo.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}

func parseOptionalPrice(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	if v < 0 {
		return nil, fmt.Errorf("%s cannot be negative", name)
	}
	return &v, nil
}

func parsePriceRange(c echo.Context) (minPrice, maxPrice *float64, err error) {
	if minPrice, err = parseOptionalPrice(c, "min_price"); err != nil {
		return nil, nil, err
	}
	if maxPrice, err = parseOptionalPrice(c, "max_price"); err != nil {
		return nil, nil, err
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return nil, nil, errors.New("min_price cannot be greater than max_price")
	}
	return minPrice, maxPrice, nil
}

func parseOptionalText(c echo.Context, name string) *string {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// parseIDParam only checks that the id is an integer. Ids that match no row
// are left to the store so lookups answer 404 and deletes stay idempotent.
func parseIDParam(c echo.Context, entity string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id", entity)
	}
	return id, nil
}

func parseHotelListFilter(c echo.Context) (domain.HotelListFilter, error) {
	destinationID, err := parseOptionalInt64(c, "destination_id")
	if err != nil {
		return domain.HotelListFilter{}, err
	}
	minPrice, maxPrice, err := parsePriceRange(c)
	if err != nil {
		return domain.HotelListFilter{}, err
	}
	return domain.HotelListFilter{
		DestinationID: destinationID,
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
	}, nil
}

func parseFlightListFilter(c echo.Context) (domain.FlightListFilter, error) {
	minPrice, maxPrice, err := parsePriceRange(c)
	if err != nil {
		return domain.FlightListFilter{}, err
	}
	return domain.FlightListFilter{
		FromCity: parseOptionalText(c, "from_city"),
		ToCity:   parseOptionalText(c, "to_city"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}, nil
}

// parseBookingListFilter accepts user_id and a comma separated type list
// (type=hotel,flight or repeated type params).
func parseBookingListFilter(c echo.Context) (domain.BookingListFilter, error) {
	userID, err := parseOptionalInt64(c, "user_id")
	if err != nil {
		return domain.BookingListFilter{}, err
	}
	filter := domain.BookingListFilter{UserID: userID}

	for _, raw := range c.QueryParams()["type"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			t, err := domain.ParseBookingType(part)
			if err != nil {
				return domain.BookingListFilter{}, err
			}
			filter.Types = append(filter.Types, t)
		}
	}
	return filter, nil
}
