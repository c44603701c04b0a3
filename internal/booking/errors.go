// Package booking implements the reservation-creation core: date
// interval handling, fixed-point pricing and the transaction
// coordinator that creates reservation rows under serializable
// isolation. Every abort path maps to exactly one of the sentinel
// errors below so that handlers can translate outcomes without
// string matching.
package booking

import "errors"

var (
	// ErrInvalidInterval is returned for a malformed date range
	// (end not strictly after start). Pure input validation; the
	// store is never touched.
	ErrInvalidInterval = errors.New("end date must be after start date")

	// ErrRoomNotFound is returned when the room does not exist or
	// is inactive.
	ErrRoomNotFound = errors.New("room not found")

	// ErrDatesUnavailable is the business conflict outcome: an
	// active reservation overlaps the requested interval. It is
	// never retried automatically.
	ErrDatesUnavailable = errors.New("room is not available for these dates")

	// ErrBadPricing signals corrupt reference data (negative or
	// overflowing price computation). Retrying cannot help.
	ErrBadPricing = errors.New("invalid room pricing configuration")

	// ErrTxConflict is the transient serialization-failure signal a
	// Store implementation must return when the database aborts the
	// transaction due to a write conflict between concurrent
	// bookings. The coordinator retries on it; it is never surfaced
	// to callers directly.
	ErrTxConflict = errors.New("transaction serialization conflict")

	// ErrTemporarilyUnavailable is surfaced after the retry budget
	// for ErrTxConflict is exhausted.
	ErrTemporarilyUnavailable = errors.New("temporarily unavailable, try again")
)
