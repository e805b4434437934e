package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/util"
)

type DestinationService interface {
	List(ctx context.Context) ([]domain.Destination, error)
	Get(ctx context.Context, id int64) (*domain.Destination, error)
}

type HotelService interface {
	List(ctx context.Context, filter domain.HotelListFilter) ([]domain.Hotel, error)
	Get(ctx context.Context, id int64) (*domain.Hotel, error)
}

type FlightService interface {
	List(ctx context.Context, filter domain.FlightListFilter) ([]domain.Flight, error)
	Get(ctx context.Context, id int64) (*domain.Flight, error)
}

// CatalogHandler serves the read-only destinations, hotels and flights.
type CatalogHandler struct {
	destinations DestinationService
	hotels       HotelService
	flights      FlightService
}

func RegisterCatalog(api *echo.Group, destinations DestinationService, hotels HotelService, flights FlightService) {
	handler := &CatalogHandler{
		destinations: destinations,
		hotels:       hotels,
		flights:      flights,
	}

	api.GET("/destinations", handler.listDestinations)
	api.GET("/destinations/:id", handler.getDestination)
	api.GET("/hotels", handler.listHotels)
	api.GET("/hotels/:id", handler.getHotel)
	api.GET("/flights", handler.listFlights)
	api.GET("/flights/:id", handler.getFlight)
}

func (h *CatalogHandler) listDestinations(c echo.Context) error {
	destinations, err := h.destinations.List(c.Request().Context())
	if err != nil {
		return writeReadError(c, err, "unable to list destinations")
	}
	return c.JSON(http.StatusOK, destinations)
}

func (h *CatalogHandler) getDestination(c echo.Context) error {
	id, err := parseIDParam(c, "destination")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	dest, err := h.destinations.Get(c.Request().Context(), id)
	if err != nil {
		return writeReadError(c, err, "unable to load destination")
	}
	return c.JSON(http.StatusOK, dest)
}

func (h *CatalogHandler) listHotels(c echo.Context) error {
	filter, err := parseHotelListFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	hotels, err := h.hotels.List(c.Request().Context(), filter)
	if err != nil {
		return writeReadError(c, err, "unable to list hotels")
	}
	return c.JSON(http.StatusOK, hotels)
}

func (h *CatalogHandler) getHotel(c echo.Context) error {
	id, err := parseIDParam(c, "hotel")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	hotel, err := h.hotels.Get(c.Request().Context(), id)
	if err != nil {
		return writeReadError(c, err, "unable to load hotel")
	}
	return c.JSON(http.StatusOK, hotel)
}

func (h *CatalogHandler) listFlights(c echo.Context) error {
	filter, err := parseFlightListFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	flights, err := h.flights.List(c.Request().Context(), filter)
	if err != nil {
		return writeReadError(c, err, "unable to list flights")
	}
	return c.JSON(http.StatusOK, flights)
}

func (h *CatalogHandler) getFlight(c echo.Context) error {
	id, err := parseIDParam(c, "flight")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	flight, err := h.flights.Get(c.Request().Context(), id)
	if err != nil {
		return writeReadError(c, err, "unable to load flight")
	}
	return c.JSON(http.StatusOK, flight)
}
