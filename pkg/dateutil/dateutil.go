// Package dateutil provides calendar arithmetic over ISO (YYYY-MM-DD) dates.
package dateutil

import "time"

const ISOLayout = "2006-01-02"

// ParseISO parses an ISO date string into a UTC midnight time.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatISO formats a time as an ISO date string.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// AddDays returns the ISO date n days after the given ISO date.
// Invalid input is returned unchanged.
func AddDays(iso string, n int) string {
	t, err := ParseISO(iso)
	if err != nil {
		return iso
	}
	return FormatISO(t.AddDate(0, 0, n))
}

// DaysBetween returns the whole number of calendar days from a to b
// (positive when b is after a). Returns 0 when either date is invalid.
func DaysBetween(a, b string) int {
	ta, err := ParseISO(a)
	if err != nil {
		return 0
	}
	tb, err := ParseISO(b)
	if err != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// Today returns the current UTC date as an ISO string.
func Today() string {
	return FormatISO(time.Now())
}
