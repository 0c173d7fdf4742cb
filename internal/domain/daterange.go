package domain

import (
	"fmt"
)

const (
	MaxRangeDays       = 15
	BookingHorizonDays = 90
)

// DateRange bounds a PYME activation window. Both ends are inclusive.
type DateRange struct {
	From  Date
	To    Date
	Valid bool
}

// NewDateRange applies the date picker rules: both ends required, from <= to,
// at most MaxRangeDays apart and inside [today, today+BookingHorizonDays).
func NewDateRange(from, to, today Date) (DateRange, error) {
	if from.IsZero() || to.IsZero() {
		return DateRange{}, fmt.Errorf("%w: from and to are required", ErrInvalidRange)
	}
	if to.Before(from) {
		return DateRange{}, fmt.Errorf("%w: %s is after %s", ErrInvalidRange, from, to)
	}
	if span := DaysBetween(from, to); span > MaxRangeDays {
		return DateRange{}, fmt.Errorf("%w: range spans %d days (max %d)", ErrInvalidRange, span, MaxRangeDays)
	}

	horizon := today.AddDays(BookingHorizonDays)
	for _, d := range []Date{from, to} {
		if d.Before(today) || !d.Before(horizon) {
			return DateRange{}, fmt.Errorf("%w: %s is outside %s..%s", ErrInvalidRange, d, today, horizon.AddDays(-1))
		}
	}

	return DateRange{From: from, To: to, Valid: true}, nil
}

func (r DateRange) Contains(d Date) bool {
	return r.Valid && d.Within(r.From, r.To)
}

func (r DateRange) String() string {
	if !r.Valid {
		return "none"
	}
	return fmt.Sprintf("%s..%s", r.From, r.To)
}
