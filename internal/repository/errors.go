// Package repository implements MySQL persistence. Sentinel errors
// shared by multiple repositories live here so that handlers can
// translate failure scenarios into HTTP responses with errors.Is.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on
// a resource owned by someone else. Handlers translate this into
// HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrAlreadyCancelled is returned when cancelling a reservation
// that is already in the CANCELLED state. Handlers translate this
// into HTTP 409.
var ErrAlreadyCancelled = errors.New("reservation already cancelled")

// ErrHotelNotFound is returned when a hotel lookup by ID finds no
// row.
var ErrHotelNotFound = errors.New("hotel not found")
