package repository

import (
	"context"
	"sync"

	"bookings/internal/entities"
)

// Ledger is the in-memory source of truth for booking records. Entries are
// append-only: deletion tombstones a record instead of removing it, and ids
// keep growing even after deletes.
type Ledger struct {
	mu      sync.RWMutex
	records []entities.BookingRecord
	nextID  int64
}

func NewLedger() *Ledger {
	return &Ledger{nextID: 1}
}

// Append stores the record, assigns the next id and returns it.
func (l *Ledger) Append(_ context.Context, record entities.BookingRecord) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record.ID = l.nextID
	record.Deleted = false
	l.nextID++
	l.records = append(l.records, record)

	return record.ID, nil
}

// MarkDeleted tombstones the record with the given id. It returns false when
// the id is unknown or already tombstoned.
func (l *Ledger) MarkDeleted(_ context.Context, id int64) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.records {
		if l.records[i].ID == id && !l.records[i].Deleted {
			l.records[i].Deleted = true
			return true, nil
		}
	}

	return false, nil
}

// Scan returns a snapshot of all live records in append order.
func (l *Ledger) Scan(_ context.Context) ([]entities.BookingRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records := make([]entities.BookingRecord, 0, len(l.records))
	for _, record := range l.records {
		if !record.Deleted {
			records = append(records, record)
		}
	}

	return records, nil
}

// ScanAll returns a snapshot of every record, tombstoned ones included.
func (l *Ledger) ScanAll(_ context.Context) ([]entities.BookingRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records := make([]entities.BookingRecord, len(l.records))
	copy(records, l.records)

	return records, nil
}

// Get returns the record with the given id, tombstoned or not.
func (l *Ledger) Get(_ context.Context, id int64) (entities.BookingRecord, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, record := range l.records {
		if record.ID == id {
			return record, true, nil
		}
	}

	return entities.BookingRecord{}, false, nil
}
