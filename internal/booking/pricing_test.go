package booking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalCents(t *testing.T) {
	// base 100.00 for 3 nights -> 300.00
	total, err := TotalCents(10000, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), total)
	assert.Equal(t, "300.00", FormatCents(total))

	_, err = TotalCents(10000, 0)
	assert.ErrorIs(t, err, ErrBadPricing)

	_, err = TotalCents(-100, 2)
	assert.ErrorIs(t, err, ErrBadPricing)

	_, err = TotalCents(math.MaxInt64, 2)
	assert.ErrorIs(t, err, ErrBadPricing)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"199.00", 19900},
		{"299", 29900},
		{"99.5", 9950},
		{"0.005", 1},   // half rounds away from zero
		{"0.004", 0},
		{"-1.25", -125},
		{" 599.00 ", 59900},
		{".50", 50}, // a bare fraction still has digits
		{"12.", 1200},
	}
	for _, tc := range tests {
		got, err := ParseAmount(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}

	// No digits at all must never parse as zero.
	for _, bad := range []string{"", ".", "-", "-.", "abc", "1,50", "1.2.3"} {
		got, err := ParseAmount(bad)
		assert.Error(t, err, "input %q", bad)
		assert.Zero(t, got, "input %q", bad)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "0.07", FormatCents(7))
	assert.Equal(t, "199.00", FormatCents(19900))
	assert.Equal(t, "-12.34", FormatCents(-1234))
}
