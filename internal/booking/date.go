package booking

import (
	"fmt"
	"time"
)

// dateLayout is the wire format for calendar dates at the API
// boundary. Dates carry no time component and are stored as UTC
// midnight instants to avoid timezone ambiguity.
const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight instant.
// Any other shape is an input-validation failure.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %q", s)
	}
	return t, nil
}

// FormatDate renders a day-aligned instant back to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// Nights returns the number of calendar-day boundaries between
// start and end. Both arguments must be day-aligned UTC instants,
// which makes the division exact.
func Nights(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}

// Overlaps reports whether the half-open intervals [s1,e1) and
// [s2,e2) intersect: s1 < e2 && s2 < e1. Back-to-back stays
// (e1 == s2) do not overlap, so checkout day can be the next
// guest's check-in day.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
