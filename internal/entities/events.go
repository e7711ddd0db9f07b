package entities

// Event is implemented by every domain event so topic routing can tell
// service-internal events apart from public ones.
type Event interface {
	IsInternal() bool
}

type BookingCreated_v1 struct {
	Header       EventHeader `json:"header"`
	BookingID    int64       `json:"booking_id"`
	CustomerName string      `json:"customer_name"`
	Date         string      `json:"date"`
	SeatNumber   string      `json:"seat_number"`
	Price        float64     `json:"price"`
}

func (e BookingCreated_v1) IsInternal() bool {
	return false
}

type BookingDeleted_v1 struct {
	Header    EventHeader `json:"header"`
	BookingID int64       `json:"booking_id"`
}

func (e BookingDeleted_v1) IsInternal() bool {
	return false
}
