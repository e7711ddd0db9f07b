package entities

// BookingRecord is a single entry in the booking ledger. Records are never
// removed: deleting a booking sets Deleted and keeps the entry in place so
// historical report queries stay stable.
type BookingRecord struct {
	ID           int64   `json:"id" db:"id"`
	CustomerName string  `json:"customer_name" db:"customer_name"`
	Date         string  `json:"date" db:"date"`
	SeatNumber   string  `json:"seat_number" db:"seat_number"`
	Price        float64 `json:"price" db:"price"`
	Deleted      bool    `json:"deleted" db:"deleted"`
}

// Dashboard is a snapshot of the incrementally maintained summary.
type Dashboard struct {
	TicketsSold int     `json:"tickets_sold"`
	Revenue     float64 `json:"revenue"`
}

// DateReport is the per-date summary recomputed from the ledger on every
// query.
type DateReport struct {
	Date             string  `json:"date"`
	TotalTicketsSold int     `json:"total_tickets_sold"`
	TotalRevenue     float64 `json:"total_revenue"`
}
