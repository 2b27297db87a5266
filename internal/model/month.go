package model

import (
	"fmt"
	"time"
)

// Month identifies one calendar month. Its canonical string form is the
// zero-padded "YYYY-MM" key used throughout the ledger, so lexical and
// chronological ordering coincide.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a "YYYY-MM" key back into a Month.
func ParseMonth(key string) (Month, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return MonthOf(t), nil
}

// Key returns the canonical "YYYY-MM" form.
func (m Month) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) String() string { return m.Key() }

// Add returns the month n calendar months after m (n may be negative).
func (m Month) Add(n int) Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return MonthOf(t)
}

// Compare orders months chronologically: -1 if m precedes n, +1 if it
// follows, 0 if equal.
func (m Month) Compare(n Month) int {
	switch {
	case m.Year != n.Year:
		if m.Year < n.Year {
			return -1
		}
		return 1
	case m.Month != n.Month:
		if m.Month < n.Month {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Before reports whether m precedes n.
func (m Month) Before(n Month) bool { return m.Compare(n) < 0 }

// After reports whether m follows n.
func (m Month) After(n Month) bool { return m.Compare(n) > 0 }

// Days returns the number of days in the month.
func (m Month) Days() int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Start returns midnight UTC on the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Quarter returns the "YYYY-Qn" label for the month.
func (m Month) Quarter() string {
	return fmt.Sprintf("%04d-Q%d", m.Year, (int(m.Month)+2)/3)
}

// AddMonths shifts t by n calendar months, preserving the day-of-month when
// it exists in the target month and clamping to the last valid day otherwise
// (Jan 31 + 1 month = Feb 28/29, never Mar 2).
func AddMonths(t time.Time, n int) time.Time {
	target := MonthOf(t).Add(n)
	day := t.Day()
	if last := target.Days(); day > last {
		day = last
	}
	return time.Date(target.Year, target.Month, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// MonthsBetween returns the calendar year/month difference from a to b,
// ignoring the day component. Negative when b precedes a.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
