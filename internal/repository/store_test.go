package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"github.com/karolw/hotel-reservation/internal/booking"
)

func TestClassifyTxErr(t *testing.T) {
	deadlock := &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}
	lockWait := &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}
	duplicate := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}

	assert.ErrorIs(t, classifyTxErr(deadlock), booking.ErrTxConflict)
	assert.ErrorIs(t, classifyTxErr(lockWait), booking.ErrTxConflict)

	// Wrapped driver errors must still be recognized.
	wrapped := fmt.Errorf("insert reservation: %w", deadlock)
	assert.ErrorIs(t, classifyTxErr(wrapped), booking.ErrTxConflict)

	// Anything else passes through untouched, business sentinels
	// in particular.
	assert.Equal(t, error(duplicate), classifyTxErr(duplicate))
	assert.ErrorIs(t, classifyTxErr(booking.ErrDatesUnavailable), booking.ErrDatesUnavailable)
	assert.NotErrorIs(t, classifyTxErr(booking.ErrDatesUnavailable), booking.ErrTxConflict)

	other := errors.New("connection reset")
	assert.Equal(t, other, classifyTxErr(other))
}
