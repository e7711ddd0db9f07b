package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bookings/internal/entities"
)

// ReportService recomputes the per-date summary from the ledger on every
// call. It never reads the dashboard counters.
type ReportService struct {
	ledger Ledger
}

func NewReportService(ledger Ledger) *ReportService {
	return &ReportService{ledger: ledger}
}

func (s *ReportService) ReportByDate(ctx context.Context, date string) (entities.DateReport, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return entities.DateReport{}, &entities.ValidationError{
			Field:  "date",
			Reason: "must be a calendar date in YYYY-MM-DD form",
		}
	}
	day := parsed.Format(dateLayout)

	records, err := s.ledger.Scan(ctx)
	if err != nil {
		return entities.DateReport{}, fmt.Errorf("failed to scan ledger: %w", err)
	}

	report := entities.DateReport{Date: day}
	for _, record := range records {
		if record.Date != day {
			continue
		}

		report.TotalTicketsSold++
		report.TotalRevenue += record.Price
	}

	return report, nil
}
