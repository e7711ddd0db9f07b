package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"bookings/internal/entities"
)

const dateLayout = "2006-01-02"

type Ledger interface {
	Append(ctx context.Context, record entities.BookingRecord) (int64, error)
	MarkDeleted(ctx context.Context, id int64) (bool, error)
	Scan(ctx context.Context) ([]entities.BookingRecord, error)
	ScanAll(ctx context.Context) ([]entities.BookingRecord, error)
	Get(ctx context.Context, id int64) (entities.BookingRecord, bool, error)
}

type CreateBookingRequest struct {
	CustomerName string
	Date         string
	SeatNumber   string
	Price        float64
}

// BookingService is the single mutation path for the ledger. Commands are
// serialized so the ledger write and the event publish of one command finish
// before the next command observes ledger state.
type BookingService struct {
	mu       sync.Mutex
	ledger   Ledger
	eventBus *cqrs.EventBus
}

func NewBookingService(ledger Ledger, eventBus *cqrs.EventBus) *BookingService {
	return &BookingService{
		ledger:   ledger,
		eventBus: eventBus,
	}
}

// CreateBooking validates the request, appends a record to the ledger and
// publishes BookingCreated_v1 with the assigned id. The record is visible to
// scans before the event reaches dispatch.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (entities.BookingRecord, error) {
	record, err := validateCreate(req)
	if err != nil {
		return entities.BookingRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.ledger.Append(ctx, record)
	if err != nil {
		return entities.BookingRecord{}, fmt.Errorf("failed to append booking: %w", err)
	}
	record.ID = id

	err = s.eventBus.Publish(ctx, entities.BookingCreated_v1{
		Header:       entities.NewEventHeader(),
		BookingID:    id,
		CustomerName: record.CustomerName,
		Date:         record.Date,
		SeatNumber:   record.SeatNumber,
		Price:        record.Price,
	})
	if err != nil {
		// The ledger write already committed; report the publish failure
		// alongside the stored record instead of pretending to roll back.
		return record, fmt.Errorf("booking %d stored but event publish failed: %w", id, err)
	}

	return record, nil
}

// DeleteBooking tombstones a live record and publishes BookingDeleted_v1.
// Deleting a missing or already-deleted booking is NotFound, not a no-op.
func (s *BookingService) DeleteBooking(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.ledger.MarkDeleted(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, err)
	}
	if !deleted {
		return &entities.NotFoundError{BookingID: id}
	}

	err = s.eventBus.Publish(ctx, entities.BookingDeleted_v1{
		Header:    entities.NewEventHeader(),
		BookingID: id,
	})
	if err != nil {
		return fmt.Errorf("booking %d deleted but event publish failed: %w", id, err)
	}

	return nil
}

func validateCreate(req CreateBookingRequest) (entities.BookingRecord, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return entities.BookingRecord{}, &entities.ValidationError{
			Field:  "customer_name",
			Reason: "must not be empty",
		}
	}

	if strings.TrimSpace(req.SeatNumber) == "" {
		return entities.BookingRecord{}, &entities.ValidationError{
			Field:  "seat_number",
			Reason: "must not be empty",
		}
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return entities.BookingRecord{}, &entities.ValidationError{
			Field:  "date",
			Reason: "must be a calendar date in YYYY-MM-DD form",
		}
	}

	if req.Price < 0 {
		return entities.BookingRecord{}, &entities.ValidationError{
			Field:  "price",
			Reason: "must not be negative",
		}
	}

	return entities.BookingRecord{
		CustomerName: req.CustomerName,
		Date:         date.Format(dateLayout),
		SeatNumber:   req.SeatNumber,
		Price:        req.Price,
	}, nil
}
