package repository

import (
	"context"
	"sync"

	"bookings/internal/entities"
)

// DashboardRepo holds the running summary counters. Only the dashboard
// projection handlers write it; everyone else reads snapshots.
type DashboardRepo struct {
	mu          sync.RWMutex
	ticketsSold int
	revenue     float64
}

func NewDashboardRepo() *DashboardRepo {
	return &DashboardRepo{}
}

func (r *DashboardRepo) IncrementSold(_ context.Context, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ticketsSold += delta

	return nil
}

func (r *DashboardRepo) IncrementRevenue(_ context.Context, delta float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.revenue += delta

	return nil
}

func (r *DashboardRepo) Get(_ context.Context) (entities.Dashboard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return entities.Dashboard{
		TicketsSold: r.ticketsSold,
		Revenue:     r.revenue,
	}, nil
}
