// Package dateutil supplies "today" and ISO date arithmetic for the
// scheduler and plan generation. Dates move through the system as
// YYYY-MM-DD strings, which compare correctly with plain string
// comparison.
package dateutil

import (
	"fmt"
	"time"
)

// ISODate is the date layout used everywhere in state and plan files.
const ISODate = "2006-01-02"

// Clock supplies the current date. Commands take a Clock so tests can
// pin "today" to a fixed date.
type Clock interface {
	Today() string
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Today() string {
	return time.Now().Format(ISODate)
}

// FixedClock always reports the same date.
type FixedClock string

func (c FixedClock) Today() string { return string(c) }

// ParseISO parses a YYYY-MM-DD string.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// AddDays returns iso shifted forward by n days.
func AddDays(iso string, n int) (string, error) {
	t, err := ParseISO(iso)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(ISODate), nil
}
