package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"bookings/internal/application/services"
	"bookings/internal/entities"
)

type Server struct {
	e    *echo.Echo
	addr string

	bookingService *services.BookingService
	queryService   *services.QueryService
}

func NewServer(
	e *echo.Echo,
	logger zerolog.Logger,
	addr string,
	bookingService *services.BookingService,
	queryService *services.QueryService,
	routerIsRunning func() bool,
) *Server {
	srv := &Server{
		e:              e,
		addr:           addr,
		bookingService: bookingService,
		queryService:   queryService,
	}

	e.POST("/bookings", srv.CreateBookingHandler)
	e.DELETE("/bookings/:booking_id", srv.DeleteBookingHandler)
	e.GET("/bookings", srv.GetBookingsHandler)
	e.GET("/bookings/:booking_id", srv.GetBookingHandler)
	e.GET("/dashboard", srv.GetDashboardHandler)
	e.GET("/reports/:date", srv.GetReportHandler)

	e.GET("/health", func(c echo.Context) error {
		if !routerIsRunning() {
			return c.String(http.StatusServiceUnavailable, "router is not running")
		}
		return c.String(http.StatusOK, "ok")
	})

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			logger.Info().
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("handling a request")

			err := next(c)
			if err != nil {
				logger.Error().
					Err(err).
					Str("path", c.Request().URL.Path).
					Msg("request handling error")
			}

			return err
		}
	})

	return srv
}

func (s *Server) Start() error {
	err := s.e.Start(s.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// errorStatus maps the core's error taxonomy onto HTTP status codes.
func errorStatus(err error) int {
	var validationErr *entities.ValidationError
	var notFoundErr *entities.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
