// Package money converts between decimal currency strings and integer
// cents. Donation amounts never pass through floating point.
package money

import (
	"fmt"
	"strings"
)

// ParseCents parses a decimal amount such as "10", "0.5" or "110.50" into
// cents. Amounts must be positive and carry at most two fractional digits.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount is required")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("amount must be positive, got %q", s)
	}
	s = strings.TrimPrefix(s, "+")

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	var cents int64
	for _, part := range []string{whole, frac} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("invalid amount %q", s)
			}
			if cents > (1<<62)/10 {
				return 0, fmt.Errorf("amount %q out of range", s)
			}
			cents = cents*10 + int64(r-'0')
		}
	}
	if cents == 0 {
		return 0, fmt.Errorf("amount must be positive, got %q", s)
	}
	return cents, nil
}

// FormatCents renders cents as a two-decimal string, e.g. 11050 → "110.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
