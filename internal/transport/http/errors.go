package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/service"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/util"
)

func writeNotFound(c echo.Context, err error) (bool, error) {
	switch {
	case errors.Is(err, service.ErrDestinationNotFound):
		return true, c.JSON(http.StatusNotFound, util.Error("Destination not found"))
	case errors.Is(err, service.ErrHotelNotFound):
		return true, c.JSON(http.StatusNotFound, util.Error("Hotel not found"))
	case errors.Is(err, service.ErrFlightNotFound):
		return true, c.JSON(http.StatusNotFound, util.Error("Flight not found"))
	default:
		return false, nil
	}
}

// writeReadError answers a failed lookup or listing.
func writeReadError(c echo.Context, err error, message string) error {
	if handled, resp := writeNotFound(c, err); handled {
		return resp
	}
	log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, util.Error(message))
}

// writeWriteError answers a failed create. Missing referenced items are 404;
// every other failure, store rejections included, is a 400 carrying the
// error message.
func writeWriteError(c echo.Context, err error) error {
	if handled, resp := writeNotFound(c, err); handled {
		return resp
	}
	if !errors.Is(err, service.ErrConstraintViolation) &&
		!errors.Is(err, service.ErrUserValidation) &&
		!errors.Is(err, service.ErrBookingValidation) &&
		!errors.Is(err, service.ErrInvalidBookingType) {
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
}
