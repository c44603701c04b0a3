package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/karolw/hotel-reservation/internal/booking"
	"github.com/karolw/hotel-reservation/internal/model"
)

// ReservationRepo provides reads and the cancellation update for
// reservations. New rows are only ever inserted by the booking
// coordinator through BookingStore; this repository never inserts
// and never deletes — cancellation is a status change.
type ReservationRepo struct{ db *sql.DB }

// NewReservationRepo returns a ReservationRepo bound to the given
// database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// ReservationDetail is the reservation shape returned to customers,
// with hotel and room context joined in and money rendered as a
// decimal string.
type ReservationDetail struct {
	ID          uint64 `json:"id"`
	RoomID      uint64 `json:"room_id"`
	RoomNumber  string `json:"room_number"`
	HotelID     uint64 `json:"hotel_id"`
	HotelName   string `json:"hotel_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	TotalAmount string `json:"total_amount"`
	Currency    string `json:"currency"`
	CreatedAt   string `json:"created_at"`
}

const detailColumns = `res.id, res.room_id, r.number, h.id, h.name,
	res.start_date, res.end_date, res.status,
	res.total_amount_cents, res.currency, res.created_at`

func scanDetail(row interface{ Scan(...any) error }) (ReservationDetail, error) {
	var d ReservationDetail
	var start, end, created time.Time
	var cents int64
	err := row.Scan(&d.ID, &d.RoomID, &d.RoomNumber, &d.HotelID, &d.HotelName,
		&start, &end, &d.Status, &cents, &d.Currency, &created)
	if err != nil {
		return ReservationDetail{}, err
	}
	d.StartDate = booking.FormatDate(start)
	d.EndDate = booking.FormatDate(end)
	d.TotalAmount = booking.FormatCents(cents)
	d.CreatedAt = created.UTC().Format(time.RFC3339)
	return d, nil
}

// ListByUser returns all reservations of a user, newest first.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID uint64) ([]ReservationDetail, error) {
	const q = `SELECT ` + detailColumns + `
	           FROM reservations res
	           JOIN rooms r ON r.id = res.room_id
	           JOIN hotels h ON h.id = r.hotel_id
	           WHERE res.user_id = ?
	           ORDER BY res.created_at DESC, res.id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ReservationDetail, 0)
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetByIDForUser returns one reservation, enforcing ownership.
// A missing row and a row owned by someone else both surface as
// sql.ErrNoRows so handlers cannot leak other users' bookings.
func (r *ReservationRepo) GetByIDForUser(ctx context.Context, reservationID, userID uint64) (ReservationDetail, error) {
	const q = `SELECT ` + detailColumns + `
	           FROM reservations res
	           JOIN rooms r ON r.id = res.room_id
	           JOIN hotels h ON h.id = r.hotel_id
	           WHERE res.id = ? AND res.user_id = ?`
	return scanDetail(r.db.QueryRowContext(ctx, q, reservationID, userID))
}

// CancelForUser flips a reservation owned by the caller from
// PENDING or CONFIRMED to CANCELLED. When nothing was updated it
// distinguishes the reasons: sql.ErrNoRows for a missing row,
// ErrForbidden for someone else's reservation and
// ErrAlreadyCancelled when the status was already CANCELLED.
func (r *ReservationRepo) CancelForUser(ctx context.Context, reservationID, userID uint64) error {
	const q = `UPDATE reservations
	           SET status = 'CANCELLED', updated_at = NOW()
	           WHERE id = ? AND user_id = ? AND status IN ('PENDING','CONFIRMED')`
	result, err := r.db.ExecContext(ctx, q, reservationID, userID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	var ownerID uint64
	var status string
	const check = `SELECT user_id, status FROM reservations WHERE id = ?`
	if err := r.db.QueryRowContext(ctx, check, reservationID).Scan(&ownerID, &status); err != nil {
		return err // sql.ErrNoRows when the reservation does not exist
	}
	if ownerID != userID {
		return ErrForbidden
	}
	if status == model.ReservationCancelled {
		return ErrAlreadyCancelled
	}
	return errors.New("reservation not cancellable")
}
