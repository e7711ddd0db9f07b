package services

import (
	"context"
	"fmt"

	"bookings/internal/entities"
)

type DashboardReader interface {
	Get(ctx context.Context) (entities.Dashboard, error)
}

// QueryService is the read-only facade over the ledger, the dashboard
// counters and the report generator. It never mutates and never publishes.
type QueryService struct {
	ledger    Ledger
	dashboard DashboardReader
	reports   *ReportService
}

func NewQueryService(
	ledger Ledger,
	dashboard DashboardReader,
	reports *ReportService,
) *QueryService {
	return &QueryService{
		ledger:    ledger,
		dashboard: dashboard,
		reports:   reports,
	}
}

// ListBookings returns all live records; tombstoned ones are excluded.
func (s *QueryService) ListBookings(ctx context.Context) ([]entities.BookingRecord, error) {
	return s.ledger.Scan(ctx)
}

// ListAllBookings returns the full history, tombstoned records included.
func (s *QueryService) ListAllBookings(ctx context.Context) ([]entities.BookingRecord, error) {
	return s.ledger.ScanAll(ctx)
}

// GetBooking returns a live record by id. Tombstoned records are NotFound.
func (s *QueryService) GetBooking(ctx context.Context, id int64) (entities.BookingRecord, error) {
	record, found, err := s.ledger.Get(ctx, id)
	if err != nil {
		return entities.BookingRecord{}, fmt.Errorf("failed to get booking %d: %w", id, err)
	}
	if !found || record.Deleted {
		return entities.BookingRecord{}, &entities.NotFoundError{BookingID: id}
	}

	return record, nil
}

func (s *QueryService) Dashboard(ctx context.Context) (entities.Dashboard, error) {
	return s.dashboard.Get(ctx)
}

func (s *QueryService) ReportByDate(ctx context.Context, date string) (entities.DateReport, error) {
	return s.reports.ReportByDate(ctx, date)
}
