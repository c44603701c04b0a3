package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/karolw/hotel-reservation/internal/model"
)

// Currency is the ISO 4217 code applied to every reservation.
const Currency = "PLN"

// RoomInfo is the slice of room reference data the coordinator
// needs inside the transaction: identity plus the room type's
// nightly base price.
type RoomInfo struct {
	ID             uint64
	BasePriceCents int64
}

// Tx is the store view available inside one atomic transaction.
// All three operations must observe the same consistent snapshot;
// the availability check is only meaningful when it runs in the
// same transaction as the insert.
type Tx interface {
	// BookableRoom loads an active room and its base price.
	// Missing or inactive rooms yield ErrRoomNotFound.
	BookableRoom(ctx context.Context, roomID uint64) (RoomInfo, error)

	// FindConflict returns the ID of a PENDING or CONFIRMED
	// reservation for the room overlapping [start, end), or 0 when
	// the interval is free. CANCELLED rows never count.
	FindConflict(ctx context.Context, roomID uint64, start, end time.Time) (uint64, error)

	// InsertReservation persists a new row and fills in the
	// generated ID and server-assigned timestamps.
	InsertReservation(ctx context.Context, res *model.Reservation) error
}

// Store runs a function inside a serializable transaction. The
// implementation must roll back on any error and translate the
// database's serialization-failure signal into ErrTxConflict so
// the coordinator can tell transient aborts from business ones.
type Store interface {
	Serializable(ctx context.Context, fn func(tx Tx) error) error
}

// Config carries the retry tuning for transient conflicts. The
// values are deliberately configuration rather than constants.
type Config struct {
	// MaxAttempts bounds how many times the whole transaction is
	// attempted when the store reports ErrTxConflict.
	MaxAttempts int
	// RetryBackoff is the base delay between attempts; attempt n
	// waits n times this value.
	RetryBackoff time.Duration
}

// Coordinator is the sole writer of reservation rows. It holds no
// in-memory locks and no mutable state; correctness under
// concurrency is delegated entirely to the store's serializable
// isolation.
type Coordinator struct {
	store    Store
	attempts int
	backoff  time.Duration
}

// NewCoordinator builds a Coordinator. Zero or negative config
// fields fall back to 3 attempts and 50ms backoff.
func NewCoordinator(store Store, cfg Config) *Coordinator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 50 * time.Millisecond
	}
	return &Coordinator{store: store, attempts: cfg.MaxAttempts, backoff: cfg.RetryBackoff}
}

// CreateReservation atomically verifies availability, snapshots the
// price and inserts a PENDING reservation for [start, end). Both
// dates must be day-aligned UTC instants. On a transient
// serialization conflict the whole transaction is retried with
// linearly increasing backoff up to the configured bound; all other
// errors are terminal for the call.
func (c *Coordinator) CreateReservation(ctx context.Context, userID, roomID uint64, start, end time.Time) (*model.Reservation, error) {
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}

	for attempt := 1; ; attempt++ {
		res, err := c.tryCreate(ctx, userID, roomID, start, end)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrTxConflict) {
			return nil, err
		}
		if attempt >= c.attempts {
			log.Printf("booking: retries exhausted after %d attempts (room=%d)", attempt, roomID)
			return nil, ErrTemporarilyUnavailable
		}
		delay := time.Duration(attempt) * c.backoff
		log.Printf("booking: serialization conflict, retrying in %s (attempt %d/%d, room=%d)",
			delay, attempt, c.attempts, roomID)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

// tryCreate is a single attempt: room lookup, conflict probe,
// pricing and insert inside one serializable transaction.
func (c *Coordinator) tryCreate(ctx context.Context, userID, roomID uint64, start, end time.Time) (*model.Reservation, error) {
	var created *model.Reservation
	err := c.store.Serializable(ctx, func(tx Tx) error {
		room, err := tx.BookableRoom(ctx, roomID)
		if err != nil {
			return err
		}

		conflictID, err := tx.FindConflict(ctx, roomID, start, end)
		if err != nil {
			return err
		}
		if conflictID != 0 {
			return fmt.Errorf("%w: reservation %d", ErrDatesUnavailable, conflictID)
		}

		total, err := TotalCents(room.BasePriceCents, Nights(start, end))
		if err != nil {
			return err
		}

		res := &model.Reservation{
			UserID:           userID,
			RoomID:           room.ID,
			StartDate:        start,
			EndDate:          end,
			Status:           model.ReservationPending,
			TotalAmountCents: total,
			Currency:         Currency,
		}
		if err := tx.InsertReservation(ctx, res); err != nil {
			return err
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
