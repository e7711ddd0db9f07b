package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) GetReportHandler(c echo.Context) error {
	report, err := s.queryService.ReportByDate(c.Request().Context(), c.Param("date"))
	if err != nil {
		return c.JSON(errorStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, report)
}
