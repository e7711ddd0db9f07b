package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bookings/internal/application/services"
)

type CreateBookingRequest struct {
	CustomerName string  `json:"customer_name"`
	Date         string  `json:"date"`
	SeatNumber   string  `json:"seat_number"`
	Price        float64 `json:"price"`
}

func (s *Server) CreateBookingHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var request CreateBookingRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, "malformed request body")
	}

	record, err := s.bookingService.CreateBooking(ctx,
		services.CreateBookingRequest{
			CustomerName: request.CustomerName,
			Date:         request.Date,
			SeatNumber:   request.SeatNumber,
			Price:        request.Price,
		})
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusCreated, record)
}
