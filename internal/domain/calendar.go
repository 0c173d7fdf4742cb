package domain

import "sort"

const (
	RecordTypeWorking    = "working"
	RecordTypeNonWorking = "non-working"
	RecordTypeExtraShift = "extra_shift"

	ShiftTypeRegular = "regular"
	RecurrenceDaily  = "daily"
)

type Recurrence struct {
	Type  string
	Every int
}

// CalendarEntry is one period of a resource's schedule on a given day.
type CalendarEntry struct {
	Date             Date
	PeriodKey        string
	RecordType       string
	ShiftLabel       string
	ShiftType        string
	Comments         string
	NonWorkingReason string
	Recurrence       Recurrence
}

// Calendar maps a day to its schedule records keyed by period.
type Calendar map[Date]map[string]CalendarEntry

// Flatten returns every entry ordered by date, then period key.
func (c Calendar) Flatten() []CalendarEntry {
	dates := make([]Date, 0, len(c))
	for date := range c {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	entries := make([]CalendarEntry, 0, len(c))
	for _, date := range dates {
		periods := c[date]
		keys := make([]string, 0, len(periods))
		for key := range periods {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			entry := periods[key]
			entry.Date = date
			entry.PeriodKey = key
			entries = append(entries, entry)
		}
	}

	return entries
}

// SchedulePatch is a single-day override sent to the workforce API.
type SchedulePatch struct {
	StartDate        Date
	EndDate          Date
	Comments         string
	IsWorking        bool
	RecordType       string
	ShiftLabel       string
	ShiftType        string
	NonWorkingReason string
	Recurrence       Recurrence
}
