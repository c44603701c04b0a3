// Package queue defines message payloads exchanged over the
// message broker and the background consumer that processes them.
package queue

// ReservationCreatedEvent is published after a reservation commits.
// It carries enough context for downstream consumers to log, notify
// or feed analytics without querying the primary database.
type ReservationCreatedEvent struct {
	EventID          string `json:"event_id"`
	ReservationID    uint64 `json:"reservation_id"`
	UserID           uint64 `json:"user_id"`
	RoomID           uint64 `json:"room_id"`
	HotelName        string `json:"hotel_name,omitempty"`
	RoomNumber       string `json:"room_number,omitempty"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Status           string `json:"status"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	Currency         string `json:"currency"`
	CreatedAt        string `json:"created_at"`
}
