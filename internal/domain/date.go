package domain

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day in YYYY-MM-DD form. The zero value means "no date".
// Normalized values compare correctly as strings.
type Date string

func ParseDate(raw string) (Date, error) {
	trimmed := strings.TrimSpace(raw)
	// Timestamps are accepted; only the calendar day is kept.
	if len(trimmed) > len(dateLayout) && trimmed[len(dateLayout)] == 'T' {
		trimmed = trimmed[:len(dateLayout)]
	}

	parsed, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", raw, err)
	}

	return Date(parsed.Format(dateLayout)), nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func (d Date) IsZero() bool {
	return d == ""
}

func (d Date) String() string {
	return string(d)
}

func (d Date) Time() time.Time {
	parsed, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func (d Date) AddDays(days int) Date {
	if d.IsZero() {
		return d
	}
	return DateOf(d.Time().AddDate(0, 0, days))
}

func (d Date) Before(other Date) bool {
	return d < other
}

func (d Date) After(other Date) bool {
	return d > other
}

// Within reports whether d falls in [from, to], both ends inclusive.
func (d Date) Within(from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

func DaysBetween(from, to Date) int {
	return int(to.Time().Sub(from.Time()).Hours() / 24)
}
