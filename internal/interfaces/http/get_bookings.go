package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bookings/internal/entities"
)

func (s *Server) GetBookingsHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		records []entities.BookingRecord
		err     error
	)
	if c.QueryParam("include_deleted") == "true" {
		records, err = s.queryService.ListAllBookings(ctx)
	} else {
		records, err = s.queryService.ListBookings(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, records)
}

func (s *Server) GetBookingHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("booking_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, "booking_id is not a valid id")
	}

	record, err := s.queryService.GetBooking(c.Request().Context(), id)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, record)
}
