package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"bookings/internal/entities"
)

const (
	dashboardKey          = "dashboard"
	dashboardSoldField    = "tickets_sold"
	dashboardRevenueField = "revenue"
)

// RedisDashboardRepo keeps the summary counters in a Redis hash so the
// dashboard survives process restarts when the Redis transport is in use.
type RedisDashboardRepo struct {
	rdb *redis.Client
}

func NewRedisDashboardRepo(rdb *redis.Client) *RedisDashboardRepo {
	return &RedisDashboardRepo{rdb: rdb}
}

func (r *RedisDashboardRepo) IncrementSold(ctx context.Context, delta int) error {
	err := r.rdb.HIncrBy(ctx, dashboardKey, dashboardSoldField, int64(delta)).Err()
	if err != nil {
		return fmt.Errorf("failed to increment tickets sold: %w", err)
	}

	return nil
}

func (r *RedisDashboardRepo) IncrementRevenue(ctx context.Context, delta float64) error {
	err := r.rdb.HIncrByFloat(ctx, dashboardKey, dashboardRevenueField, delta).Err()
	if err != nil {
		return fmt.Errorf("failed to increment revenue: %w", err)
	}

	return nil
}

func (r *RedisDashboardRepo) Get(ctx context.Context) (entities.Dashboard, error) {
	fields, err := r.rdb.HGetAll(ctx, dashboardKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return entities.Dashboard{}, fmt.Errorf("failed to read dashboard: %w", err)
	}

	var dashboard entities.Dashboard

	if raw, ok := fields[dashboardSoldField]; ok {
		dashboard.TicketsSold, err = strconv.Atoi(raw)
		if err != nil {
			return entities.Dashboard{}, fmt.Errorf("malformed tickets_sold value %q: %w", raw, err)
		}
	}

	if raw, ok := fields[dashboardRevenueField]; ok {
		dashboard.Revenue, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return entities.Dashboard{}, fmt.Errorf("malformed revenue value %q: %w", raw, err)
		}
	}

	return dashboard, nil
}
