package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/rs/zerolog"

	"bookings/internal/entities"
)

type DashboardRepo interface {
	IncrementSold(ctx context.Context, delta int) error
	IncrementRevenue(ctx context.Context, delta float64) error
}

type LedgerReader interface {
	Get(ctx context.Context, id int64) (entities.BookingRecord, bool, error)
}

// Handler owns the dashboard projection. It is the only writer of the
// dashboard counters.
type Handler struct {
	dashboardRepo DashboardRepo
	ledger        LedgerReader
}

func NewHandler(
	dashboardRepo DashboardRepo,
	ledger LedgerReader,
) *Handler {
	return &Handler{
		dashboardRepo: dashboardRepo,
		ledger:        ledger,
	}
}

func (h *Handler) BookingCreatedHandler() cqrs.GroupEventHandler {
	return cqrs.NewGroupEventHandler(
		func(ctx context.Context, event *entities.BookingCreated_v1) error {
			zerolog.Ctx(ctx).Info().
				Int64("booking_id", event.BookingID).
				Msg("dashboard: booking created")

			if err := h.dashboardRepo.IncrementSold(ctx, 1); err != nil {
				return fmt.Errorf("failed to increment tickets sold: %w", err)
			}
			if err := h.dashboardRepo.IncrementRevenue(ctx, event.Price); err != nil {
				return fmt.Errorf("failed to increment revenue: %w", err)
			}

			return nil
		},
	)
}

func (h *Handler) BookingDeletedHandler() cqrs.GroupEventHandler {
	return cqrs.NewGroupEventHandler(
		func(ctx context.Context, event *entities.BookingDeleted_v1) error {
			zerolog.Ctx(ctx).Info().
				Int64("booking_id", event.BookingID).
				Msg("dashboard: booking deleted")

			// The event carries only the id. The tombstone still holds the
			// original price, so the decrement matches exactly what the
			// creation added.
			record, found, err := h.ledger.Get(ctx, event.BookingID)
			if err != nil {
				return fmt.Errorf("failed to resolve deleted booking %d: %w", event.BookingID, err)
			}
			if !found {
				return fmt.Errorf("deleted booking %d missing from ledger", event.BookingID)
			}

			if err := h.dashboardRepo.IncrementSold(ctx, -1); err != nil {
				return fmt.Errorf("failed to decrement tickets sold: %w", err)
			}
			if err := h.dashboardRepo.IncrementRevenue(ctx, -record.Price); err != nil {
				return fmt.Errorf("failed to decrement revenue: %w", err)
			}

			return nil
		},
	)
}
