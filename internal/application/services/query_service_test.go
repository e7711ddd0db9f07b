package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookings/internal/application/services"
	"bookings/internal/entities"
)

func TestGetBooking_TombstonedIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	record, err := env.booking.CreateBooking(ctx, services.CreateBookingRequest{
		CustomerName: "Alice",
		Date:         "2025-08-15",
		SeatNumber:   "A1",
		Price:        50,
	})
	require.NoError(t, err)

	require.NoError(t, env.booking.DeleteBooking(ctx, record.ID))

	var notFoundErr *entities.NotFoundError

	_, err = env.query.GetBooking(ctx, record.ID)
	require.ErrorAs(t, err, &notFoundErr)

	_, err = env.query.GetBooking(ctx, 999)
	require.ErrorAs(t, err, &notFoundErr)
}

func TestListAllBookings_IncludesTombstones(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	record, err := env.booking.CreateBooking(ctx, services.CreateBookingRequest{
		CustomerName: "Alice",
		Date:         "2025-08-15",
		SeatNumber:   "A1",
		Price:        50,
	})
	require.NoError(t, err)

	require.NoError(t, env.booking.DeleteBooking(ctx, record.ID))

	live, err := env.query.ListBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, live)

	all, err := env.query.ListAllBookings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Deleted)
}

func TestReportByDate_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.booking.CreateBooking(ctx, services.CreateBookingRequest{
		CustomerName: "Alice",
		Date:         "2025-08-15",
		SeatNumber:   "A1",
		Price:        50,
	})
	require.NoError(t, err)

	first, err := env.query.ReportByDate(ctx, "2025-08-15")
	require.NoError(t, err)

	second, err := env.query.ReportByDate(ctx, "2025-08-15")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReportByDate_FiltersByExactDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.booking.CreateBooking(ctx, services.CreateBookingRequest{
		CustomerName: "Alice",
		Date:         "2025-08-15",
		SeatNumber:   "A1",
		Price:        50,
	})
	require.NoError(t, err)

	_, err = env.booking.CreateBooking(ctx, services.CreateBookingRequest{
		CustomerName: "Bob",
		Date:         "2025-08-16",
		SeatNumber:   "B2",
		Price:        30,
	})
	require.NoError(t, err)

	report, err := env.query.ReportByDate(ctx, "2025-08-15")
	require.NoError(t, err)
	assert.Equal(t, entities.DateReport{
		Date:             "2025-08-15",
		TotalTicketsSold: 1,
		TotalRevenue:     50,
	}, report)

	empty, err := env.query.ReportByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, entities.DateReport{Date: "2024-01-01"}, empty)
}

func TestReportByDate_InvalidDate(t *testing.T) {
	env := newTestEnv(t)

	var validationErr *entities.ValidationError

	_, err := env.query.ReportByDate(context.Background(), "15-08-2025")
	require.ErrorAs(t, err, &validationErr)
}
