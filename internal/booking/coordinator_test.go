package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karolw/hotel-reservation/internal/model"
)

// memStore is an in-memory Store for coordinator tests. A mutex
// stands in for the database's serializable isolation: transactions
// run one at a time, so each one sees a consistent snapshot.
type memStore struct {
	mu           sync.Mutex
	rooms        map[uint64]RoomInfo
	reservations []*model.Reservation
	nextID       uint64
	calls        int
}

func newMemStore() *memStore {
	return &memStore{rooms: map[uint64]RoomInfo{}}
}

func (s *memStore) Serializable(ctx context.Context, fn func(Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return fn(&memTx{s: s})
}

type memTx struct{ s *memStore }

func (t *memTx) BookableRoom(ctx context.Context, roomID uint64) (RoomInfo, error) {
	room, ok := t.s.rooms[roomID]
	if !ok {
		return RoomInfo{}, ErrRoomNotFound
	}
	return room, nil
}

func (t *memTx) FindConflict(ctx context.Context, roomID uint64, start, end time.Time) (uint64, error) {
	for _, r := range t.s.reservations {
		if r.RoomID != roomID || r.Status == model.ReservationCancelled {
			continue
		}
		if Overlaps(r.StartDate, r.EndDate, start, end) {
			return r.ID, nil
		}
	}
	return 0, nil
}

func (t *memTx) InsertReservation(ctx context.Context, res *model.Reservation) error {
	t.s.nextID++
	res.ID = t.s.nextID
	res.CreatedAt = time.Now().UTC()
	t.s.reservations = append(t.s.reservations, res)
	return nil
}

// conflictingStore reports a serialization conflict for the first
// failures calls, then delegates to the wrapped store.
type conflictingStore struct {
	inner    Store
	failures int
	calls    int
}

func (s *conflictingStore) Serializable(ctx context.Context, fn func(Tx) error) error {
	s.calls++
	if s.calls <= s.failures {
		return ErrTxConflict
	}
	return s.inner.Serializable(ctx, fn)
}

func TestCreateReservation(t *testing.T) {
	store := newMemStore()
	store.rooms[1] = RoomInfo{ID: 1, BasePriceCents: 10000}
	coord := NewCoordinator(store, Config{MaxAttempts: 3, RetryBackoff: time.Millisecond})

	res, err := coord.CreateReservation(context.Background(), 42, 1, day("2024-03-01"), day("2024-03-04"))
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, uint64(42), res.UserID)
	assert.Equal(t, model.ReservationPending, res.Status)
	assert.Equal(t, int64(30000), res.TotalAmountCents)
	assert.Equal(t, Currency, res.Currency)
	assert.False(t, res.CreatedAt.IsZero())
}

func TestCreateReservationInvalidInterval(t *testing.T) {
	store := newMemStore()
	coord := NewCoordinator(store, Config{})

	for _, dates := range [][2]string{
		{"2024-03-05", "2024-03-01"},
		{"2024-03-01", "2024-03-01"},
	} {
		_, err := coord.CreateReservation(context.Background(), 1, 1, day(dates[0]), day(dates[1]))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	}
	// Input validation must never reach the store.
	assert.Zero(t, store.calls)
}

func TestCreateReservationRoomNotFound(t *testing.T) {
	store := newMemStore()
	coord := NewCoordinator(store, Config{})

	_, err := coord.CreateReservation(context.Background(), 1, 99, day("2024-03-01"), day("2024-03-02"))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreateReservationConflict(t *testing.T) {
	store := newMemStore()
	store.rooms[1] = RoomInfo{ID: 1, BasePriceCents: 10000}
	coord := NewCoordinator(store, Config{})

	_, err := coord.CreateReservation(context.Background(), 1, 1, day("2024-01-01"), day("2024-01-05"))
	require.NoError(t, err)

	_, err = coord.CreateReservation(context.Background(), 2, 1, day("2024-01-03"), day("2024-01-07"))
	assert.ErrorIs(t, err, ErrDatesUnavailable)

	// Back-to-back stays share a boundary day and must not conflict.
	_, err = coord.CreateReservation(context.Background(), 2, 1, day("2024-01-05"), day("2024-01-08"))
	assert.NoError(t, err)
}

func TestCancelledReservationDoesNotBlock(t *testing.T) {
	store := newMemStore()
	store.rooms[1] = RoomInfo{ID: 1, BasePriceCents: 10000}
	store.reservations = append(store.reservations, &model.Reservation{
		ID: 1, RoomID: 1, Status: model.ReservationCancelled,
		StartDate: day("2024-01-01"), EndDate: day("2024-01-05"),
	})
	coord := NewCoordinator(store, Config{})

	res, err := coord.CreateReservation(context.Background(), 7, 1, day("2024-01-01"), day("2024-01-05"))
	require.NoError(t, err)
	assert.Equal(t, model.ReservationPending, res.Status)
}

func TestPriceIsSnapshottedAtBooking(t *testing.T) {
	store := newMemStore()
	store.rooms[1] = RoomInfo{ID: 1, BasePriceCents: 10000}
	coord := NewCoordinator(store, Config{})

	first, err := coord.CreateReservation(context.Background(), 1, 1, day("2024-03-01"), day("2024-03-03"))
	require.NoError(t, err)

	// A later price change must not affect the stored total.
	store.rooms[1] = RoomInfo{ID: 1, BasePriceCents: 20000}
	second, err := coord.CreateReservation(context.Background(), 1, 1, day("2024-04-01"), day("2024-04-03"))
	require.NoError(t, err)

	assert.Equal(t, int64(20000), first.TotalAmountCents)
	assert.Equal(t, int64(40000), second.TotalAmountCents)
}

func TestAtMostOneWinner(t *testing.T) {
	store := newMemStore()
	store.rooms[1] = RoomInfo{ID: 1, BasePriceCents: 10000}
	coord := NewCoordinator(store, Config{MaxAttempts: 3, RetryBackoff: time.Millisecond})

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Every interval overlaps every other one.
			_, errs[i] = coord.CreateReservation(context.Background(),
				uint64(i+1), 1, day("2024-06-01"), day("2024-06-10"))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrDatesUnavailable)
		}
	}
	assert.Equal(t, 1, wins)

	committed := 0
	for _, r := range store.reservations {
		if r.Status == model.ReservationPending {
			committed++
		}
	}
	assert.Equal(t, 1, committed)
}

func TestTransientConflictIsRetried(t *testing.T) {
	inner := newMemStore()
	inner.rooms[1] = RoomInfo{ID: 1, BasePriceCents: 10000}
	store := &conflictingStore{inner: inner, failures: 2}
	coord := NewCoordinator(store, Config{MaxAttempts: 3, RetryBackoff: time.Millisecond})

	res, err := coord.CreateReservation(context.Background(), 1, 1, day("2024-03-01"), day("2024-03-02"))
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, 3, store.calls)
}

func TestRetryExhaustion(t *testing.T) {
	store := &conflictingStore{inner: newMemStore(), failures: 1 << 30}
	coord := NewCoordinator(store, Config{MaxAttempts: 3, RetryBackoff: time.Millisecond})

	_, err := coord.CreateReservation(context.Background(), 1, 1, day("2024-03-01"), day("2024-03-02"))
	assert.ErrorIs(t, err, ErrTemporarilyUnavailable)
	assert.NotErrorIs(t, err, ErrDatesUnavailable)
	assert.Equal(t, 3, store.calls)
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	store := &conflictingStore{inner: newMemStore(), failures: 1 << 30}
	coord := NewCoordinator(store, Config{MaxAttempts: 10, RetryBackoff: 50 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := coord.CreateReservation(ctx, 1, 1, day("2024-03-01"), day("2024-03-02"))
	assert.True(t, errors.Is(err, context.Canceled))
}
