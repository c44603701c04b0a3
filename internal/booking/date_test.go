package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"", "2024-3-1", "01-03-2024", "2024-03-01T00:00:00Z", "not-a-date"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(day("2024-03-01"), day("2024-03-04")))
	assert.Equal(t, 1, Nights(day("2024-12-31"), day("2025-01-01")))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"identical", "2024-01-01", "2024-01-05", "2024-01-01", "2024-01-05", true},
		{"contained", "2024-01-01", "2024-01-10", "2024-01-03", "2024-01-05", true},
		{"partial overlap", "2024-01-01", "2024-01-05", "2024-01-04", "2024-01-08", true},
		{"back to back", "2024-01-01", "2024-01-05", "2024-01-05", "2024-01-08", false},
		{"back to back reversed", "2024-01-05", "2024-01-08", "2024-01-01", "2024-01-05", false},
		{"disjoint", "2024-01-01", "2024-01-03", "2024-01-10", "2024-01-12", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(day(tc.s1), day(tc.e1), day(tc.s2), day(tc.e2))
			assert.Equal(t, tc.want, got)
		})
	}
}
