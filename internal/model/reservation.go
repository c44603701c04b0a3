package model

import "time"

// Reservation statuses. Only PENDING and CONFIRMED reservations
// block a room for their date interval; CANCELLED rows are kept
// for history and never block new bookings.
const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
)

// Reservation records a user's booking of one room for a half-open
// date interval [StartDate, EndDate). The total amount is a
// snapshot of the room type's base price at booking time multiplied
// by the number of nights; it is never recomputed when the base
// price changes later. Rows are never deleted — cancellation is a
// status change.
//
// Fields:
//  ID               – primary key identifier.
//  UserID           – user who made the reservation.
//  RoomID           – booked room.
//  StartDate        – check-in date (inclusive), UTC midnight.
//  EndDate          – check-out date (exclusive), UTC midnight.
//  Status           – PENDING, CONFIRMED or CANCELLED.
//  TotalAmountCents – snapshotted total price in currency minor units.
//  Currency         – ISO 4217 currency code.
//  CreatedAt        – server-assigned creation timestamp.
//  UpdatedAt        – timestamp of last status change.
type Reservation struct {
	ID               uint64    // reservations.id
	UserID           uint64    // reservations.user_id
	RoomID           uint64    // reservations.room_id
	StartDate        time.Time // reservations.start_date
	EndDate          time.Time // reservations.end_date
	Status           string    // reservations.status
	TotalAmountCents int64     // reservations.total_amount_cents
	Currency         string    // reservations.currency
	CreatedAt        time.Time // reservations.created_at
	UpdatedAt        time.Time // reservations.updated_at
}
