package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) GetDashboardHandler(c echo.Context) error {
	dashboard, err := s.queryService.Dashboard(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dashboard)
}
