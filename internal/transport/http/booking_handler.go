package http

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/util"
)

type BookingService interface {
	List(ctx context.Context, filter domain.BookingListFilter) ([]domain.Booking, error)
	Create(ctx context.Context, fields domain.BookingCreateFields) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type BookingHandler struct {
	bookings BookingService
}

type createBookingRequest struct {
	UserID       *int64   `json:"user_id"`
	Type         string   `json:"type"`
	ItemID       *int64   `json:"item_id"`
	CheckInDate  *string  `json:"check_in_date"`
	CheckOutDate *string  `json:"check_out_date"`
	Guests       *int     `json:"guests"`
	TotalPrice   *float64 `json:"total_price"`
}

func RegisterBookings(api *echo.Group, bookings BookingService) {
	handler := &BookingHandler{bookings: bookings}

	api.GET("/bookings", handler.listBookings)
	api.POST("/bookings", handler.createBooking)
	api.DELETE("/bookings/:id", handler.deleteBooking)
}

func (h *BookingHandler) listBookings(c echo.Context) error {
	filter, err := parseBookingListFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	bookings, err := h.bookings.List(c.Request().Context(), filter)
	if err != nil {
		return writeReadError(c, err, "unable to list bookings")
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) createBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	kind, err := domain.ParseBookingType(req.Type)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(domain.ErrUnknownBookingType.Error()))
	}
	if req.ItemID == nil {
		return c.JSON(http.StatusBadRequest, util.Error("item_id is required"))
	}
	if req.TotalPrice == nil {
		return c.JSON(http.StatusBadRequest, util.Error("total_price is required"))
	}
	target, err := domain.NewBookingTarget(kind, *req.ItemID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	booking, err := h.bookings.Create(c.Request().Context(), domain.BookingCreateFields{
		UserID:       req.UserID,
		Target:       target,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Guests:       req.Guests,
		TotalPrice:   *req.TotalPrice,
	})
	if err != nil {
		return writeWriteError(c, err)
	}
	return c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) deleteBooking(c echo.Context) error {
	id, err := parseIDParam(c, "booking")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}
	if err := h.bookings.Delete(c.Request().Context(), id); err != nil {
		log.Printf("delete booking %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, util.Error("could not delete booking"))
	}
	return c.NoContent(http.StatusNoContent)
}
