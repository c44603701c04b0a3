package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/karolw/hotel-reservation/internal/booking"
	"github.com/karolw/hotel-reservation/internal/model"
)

// MySQL/InnoDB error numbers that indicate the transaction lost a
// race with a concurrent one and can be retried as a whole.
const (
	mysqlErrLockDeadlock    = 1213
	mysqlErrLockWaitTimeout = 1205
)

// BookingStore adapts *sql.DB to the booking.Store contract: it
// runs the coordinator's transaction body at SERIALIZABLE isolation
// and maps InnoDB's conflict signals onto booking.ErrTxConflict so
// the coordinator can distinguish transient aborts from business
// rejections.
type BookingStore struct {
	db *sql.DB
}

// NewBookingStore returns a BookingStore bound to the given database.
func NewBookingStore(db *sql.DB) *BookingStore { return &BookingStore{db: db} }

// Serializable runs fn inside one serializable transaction. The
// transaction is rolled back on any error from fn, including a
// cancelled context, so an abandoned request never leaves a partial
// row behind.
func (s *BookingStore) Serializable(ctx context.Context, fn func(booking.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return classifyTxErr(err)
	}
	if err := fn(&storeTx{tx: tx}); err != nil {
		_ = tx.Rollback()
		return classifyTxErr(err)
	}
	if err := tx.Commit(); err != nil {
		return classifyTxErr(err)
	}
	return nil
}

// classifyTxErr rewrites InnoDB serialization failures as
// booking.ErrTxConflict and passes every other error through
// untouched (business sentinels included).
func classifyTxErr(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrLockDeadlock, mysqlErrLockWaitTimeout:
			return booking.ErrTxConflict
		}
	}
	return err
}

// storeTx implements booking.Tx against one open *sql.Tx. All
// reads and the insert observe the transaction's snapshot.
type storeTx struct {
	tx *sql.Tx
}

func (t *storeTx) BookableRoom(ctx context.Context, roomID uint64) (booking.RoomInfo, error) {
	const q = `SELECT r.id, rt.base_price_cents
	           FROM rooms r
	           JOIN room_types rt ON rt.id = r.room_type_id
	           WHERE r.id = ? AND r.is_active = 1`
	var info booking.RoomInfo
	err := t.tx.QueryRowContext(ctx, q, roomID).Scan(&info.ID, &info.BasePriceCents)
	if errors.Is(err, sql.ErrNoRows) {
		return booking.RoomInfo{}, booking.ErrRoomNotFound
	}
	if err != nil {
		return booking.RoomInfo{}, err
	}
	return info, nil
}

func (t *storeTx) FindConflict(ctx context.Context, roomID uint64, start, end time.Time) (uint64, error) {
	// Half-open overlap: existing.start < end AND existing.end > start.
	const q = `SELECT id FROM reservations
	           WHERE room_id = ?
	             AND status IN ('PENDING','CONFIRMED')
	             AND start_date < ? AND end_date > ?
	           LIMIT 1`
	var id uint64
	err := t.tx.QueryRowContext(ctx, q, roomID, end, start).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (t *storeTx) InsertReservation(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations
	           (user_id, room_id, start_date, end_date, status, total_amount_cents, currency)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := t.tx.ExecContext(ctx, q,
		res.UserID, res.RoomID, res.StartDate, res.EndDate,
		res.Status, res.TotalAmountCents, res.Currency)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	// Read back the server-assigned timestamps.
	const sel = `SELECT created_at, updated_at FROM reservations WHERE id = ?`
	return t.tx.QueryRowContext(ctx, sel, res.ID).Scan(&res.CreatedAt, &res.UpdatedAt)
}
