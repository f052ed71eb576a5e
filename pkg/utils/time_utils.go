package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for trip dates.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return t, nil
}

// FormatDateLong renders a date the way it appears inside prompts,
// e.g. "January 2, 2026".
func FormatDateLong(t time.Time) string {
	return t.Format("January 2, 2006")
}

// TripDuration is the inclusive day count between two dates: a trip that
// starts and ends on the same day lasts one day.
func TripDuration(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	return days + 1
}
