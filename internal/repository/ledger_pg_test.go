package repository_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookings/internal/entities"
	"bookings/internal/repository"
)

var (
	pgDB     *sqlx.DB
	pgDBOnce sync.Once
)

func getDb(t *testing.T) *sqlx.DB {
	t.Helper()

	url := os.Getenv("POSTGRES_URL")
	if url == "" {
		t.Skip("POSTGRES_URL not set, skipping postgres integration test")
	}

	pgDBOnce.Do(func() {
		var err error
		pgDB, err = sqlx.Open("postgres", url)
		require.NoError(t, err)
		require.NoError(t, repository.InitializeDBSchema(pgDB))
	})

	return pgDB
}

func cleanupBookings(t *testing.T, db *sqlx.DB) {
	t.Helper()

	_, err := db.Exec("TRUNCATE TABLE bookings RESTART IDENTITY")
	require.NoError(t, err)
}

func TestPostgresLedger_Integration(t *testing.T) {
	db := getDb(t)
	t.Cleanup(func() { cleanupBookings(t, db) })
	cleanupBookings(t, db)

	ledger := repository.NewPostgresLedger(db)
	ctx := context.Background()

	id1, err := ledger.Append(ctx, entities.BookingRecord{
		CustomerName: "Alice",
		Date:         "2025-08-15",
		SeatNumber:   "A1",
		Price:        50,
	})
	require.NoError(t, err)

	id2, err := ledger.Append(ctx, entities.BookingRecord{
		CustomerName: "Bob",
		Date:         "2025-08-15",
		SeatNumber:   "B2",
		Price:        30,
	})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	live, err := ledger.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, live, 2)
	assert.Equal(t, "Alice", live[0].CustomerName)
	assert.Equal(t, "2025-08-15", live[0].Date)
	assert.Equal(t, float64(50), live[0].Price)

	deleted, err := ledger.MarkDeleted(ctx, id1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = ledger.MarkDeleted(ctx, id1)
	require.NoError(t, err)
	assert.False(t, deleted, "tombstoned row must not be deletable twice")

	live, err = ledger.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, id2, live[0].ID)

	all, err := ledger.ScanAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	record, found, err := ledger.Get(ctx, id1)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, record.Deleted)
	assert.Equal(t, float64(50), record.Price)

	_, found, err = ledger.Get(ctx, id2+1000)
	require.NoError(t, err)
	assert.False(t, found)
}
