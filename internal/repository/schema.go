package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func InitializeDBSchema(db *sqlx.DB) error {
	_, err := db.ExecContext(context.Background(), `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGSERIAL PRIMARY KEY,
	customer_name VARCHAR(255) NOT NULL,
	date VARCHAR(10) NOT NULL,
	seat_number VARCHAR(32) NOT NULL,
	price NUMERIC(10, 2) NOT NULL DEFAULT 0,
	deleted BOOLEAN NOT NULL DEFAULT FALSE
);`)
	if err != nil {
		return fmt.Errorf("failed to create bookings table: %w", err)
	}

	return nil
}
