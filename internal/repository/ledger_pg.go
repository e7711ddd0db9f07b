package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bookings/internal/entities"
)

// PostgresLedger implements the same contract as the in-memory Ledger on top
// of Postgres. Ids come from a BIGSERIAL sequence, so they stay unique and
// strictly increasing even after deletes.
type PostgresLedger struct {
	db *sqlx.DB
}

func NewPostgresLedger(db *sqlx.DB) *PostgresLedger {
	return &PostgresLedger{db: db}
}

func (l *PostgresLedger) Append(ctx context.Context, record entities.BookingRecord) (int64, error) {
	var id int64

	query := `
		INSERT INTO bookings (
			customer_name, date, seat_number, price
		) VALUES (
			$1, $2, $3, $4
		) RETURNING id`

	err := l.db.QueryRowContext(ctx, query,
		record.CustomerName,
		record.Date,
		record.SeatNumber,
		record.Price,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to append booking: %w", err)
	}

	return id, nil
}

func (l *PostgresLedger) MarkDeleted(ctx context.Context, id int64) (bool, error) {
	res, err := l.db.ExecContext(ctx,
		`UPDATE bookings SET deleted = TRUE WHERE id = $1 AND NOT deleted`, id)
	if err != nil {
		return false, fmt.Errorf("failed to tombstone booking %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (l *PostgresLedger) Scan(ctx context.Context) ([]entities.BookingRecord, error) {
	records := []entities.BookingRecord{}

	err := l.db.SelectContext(ctx, &records,
		`SELECT id, customer_name, date, seat_number, price, deleted
		 FROM bookings WHERE NOT deleted ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}

	return records, nil
}

func (l *PostgresLedger) ScanAll(ctx context.Context) ([]entities.BookingRecord, error) {
	records := []entities.BookingRecord{}

	err := l.db.SelectContext(ctx, &records,
		`SELECT id, customer_name, date, seat_number, price, deleted
		 FROM bookings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}

	return records, nil
}

func (l *PostgresLedger) Get(ctx context.Context, id int64) (entities.BookingRecord, bool, error) {
	var record entities.BookingRecord

	err := l.db.GetContext(ctx, &record,
		`SELECT id, customer_name, date, seat_number, price, deleted
		 FROM bookings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.BookingRecord{}, false, nil
	}
	if err != nil {
		return entities.BookingRecord{}, false, fmt.Errorf("failed to get booking %d: %w", id, err)
	}

	return record, true, nil
}
