// utils/date_utils.go
package utils

import "time"

const DateLayout = "2006-01-02"

// DateOnly drops the clock part so two timestamps on the same calendar
// day compare equal. Everything price-related works on whole days.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b (checkout
// minus check-in). Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	a = DateOnly(a)
	b = DateOnly(b)
	return int(b.Sub(a).Hours() / 24)
}

// ParseDate parses a "2006-01-02" string. Returns zero time if s is empty
// to let callers decide how to render.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
