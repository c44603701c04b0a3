package booking

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Monetary values are integer cents throughout (currency minor
// units, two fractional digits). Conversions to and from the
// decimal string form happen only at the boundary.

// TotalCents computes the snapshot total for a stay: base nightly
// price times the night count. Both inputs come from reference
// data, so any impossible value (non-positive nights, negative
// price, overflow) is reported as ErrBadPricing rather than a
// business rejection.
func TotalCents(basePriceCents int64, nights int) (int64, error) {
	if nights <= 0 {
		return 0, fmt.Errorf("%w: %d nights", ErrBadPricing, nights)
	}
	if basePriceCents < 0 {
		return 0, fmt.Errorf("%w: negative base price", ErrBadPricing)
	}
	if basePriceCents > math.MaxInt64/int64(nights) {
		return 0, fmt.Errorf("%w: total overflows", ErrBadPricing)
	}
	return basePriceCents * int64(nights), nil
}

// ParseAmount converts a decimal string such as "199.00" or "99.5"
// into cents, rounding half away from zero when more than two
// fractional digits are supplied.
func ParseAmount(s string) (int64, error) {
	in := strings.TrimSpace(s)
	neg := strings.HasPrefix(in, "-")
	if neg {
		in = in[1:]
	}
	whole, frac, _ := strings.Cut(in, ".")
	// At least one digit must be present on either side of the dot;
	// "", ".", "-" and "-." are not amounts.
	if whole == "" {
		if frac == "" {
			return 0, fmt.Errorf("invalid amount: %q", s)
		}
		whole = "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %q", s)
	}
	cents := units * 100
	if frac != "" {
		// Keep three digits so the third can drive rounding.
		digits := frac
		if len(digits) > 3 {
			digits = digits[:3]
		}
		for len(digits) < 3 {
			digits += "0"
		}
		milli, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount: %q", s)
		}
		cents += milli / 10
		if milli%10 >= 5 {
			cents++
		}
	}
	if neg {
		cents = -cents
	}
	return cents, nil
}

// FormatCents renders cents as a decimal string with two
// fractional digits, e.g. 30000 -> "300.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
