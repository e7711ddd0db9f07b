package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (s *Server) DeleteBookingHandler(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("booking_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, "booking_id is not a valid id")
	}

	err = s.bookingService.DeleteBooking(ctx, id)
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
