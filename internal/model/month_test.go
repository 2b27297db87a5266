package model

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestMonthKey_ZeroPadded(t *testing.T) {
	m := Month{Year: 2025, Month: time.March}
	if got := m.Key(); got != "2025-03" {
		t.Fatalf("Key() = %q, want 2025-03", got)
	}
}

func TestParseMonth_RoundTrip(t *testing.T) {
	m, err := ParseMonth("2025-11")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}
	if m.Year != 2025 || m.Month != time.November {
		t.Fatalf("ParseMonth = %+v", m)
	}
	if m.Key() != "2025-11" {
		t.Fatalf("round trip = %q", m.Key())
	}
}

func TestParseMonth_Invalid(t *testing.T) {
	if _, err := ParseMonth("2025/11"); err == nil {
		t.Fatal("expected error for malformed key")
	}
}

func TestMonthAdd_CrossesYear(t *testing.T) {
	m := Month{Year: 2025, Month: time.November}
	if got := m.Add(3); got != (Month{Year: 2026, Month: time.February}) {
		t.Fatalf("Add(3) = %v", got)
	}
	if got := m.Add(-11); got != (Month{Year: 2024, Month: time.December}) {
		t.Fatalf("Add(-11) = %v", got)
	}
}

func TestMonthDays(t *testing.T) {
	cases := []struct {
		m    Month
		want int
	}{
		{Month{2025, time.January}, 31},
		{Month{2025, time.February}, 28},
		{Month{2024, time.February}, 29}, // leap year
		{Month{2025, time.April}, 30},
	}
	for _, c := range cases {
		if got := c.m.Days(); got != c.want {
			t.Errorf("%v.Days() = %d, want %d", c.m, got, c.want)
		}
	}
}

func TestAddMonths_PreservesDay(t *testing.T) {
	got := AddMonths(date(t, "2025-03-15"), 1)
	if got != date(t, "2025-04-15") {
		t.Fatalf("AddMonths = %s", got.Format("2006-01-02"))
	}
}

func TestAddMonths_ClampsToLastValidDay(t *testing.T) {
	// Jan 31 + 1 month must land on Feb 28, not normalize into March.
	got := AddMonths(date(t, "2025-01-31"), 1)
	if got != date(t, "2025-02-28") {
		t.Fatalf("AddMonths(Jan 31, 1) = %s", got.Format("2006-01-02"))
	}

	got = AddMonths(date(t, "2024-01-31"), 1)
	if got != date(t, "2024-02-29") {
		t.Fatalf("AddMonths(Jan 31 2024, 1) = %s", got.Format("2006-01-02"))
	}
}

func TestAddMonths_TwelveMonths(t *testing.T) {
	got := AddMonths(date(t, "2025-06-20"), 12)
	if got != date(t, "2026-06-20") {
		t.Fatalf("AddMonths(+12) = %s", got.Format("2006-01-02"))
	}
}

func TestMonthsBetween(t *testing.T) {
	base := date(t, "2025-12-08")
	cases := []struct {
		other string
		want  int
	}{
		{"2026-03-15", 3},
		{"2025-12-31", 0},
		{"2025-11-01", -1},
		{"2027-01-01", 13},
	}
	for _, c := range cases {
		if got := MonthsBetween(base, date(t, c.other)); got != c.want {
			t.Errorf("MonthsBetween(base, %s) = %d, want %d", c.other, got, c.want)
		}
	}
}

func TestMonthQuarter(t *testing.T) {
	cases := []struct {
		m    Month
		want string
	}{
		{Month{2025, time.January}, "2025-Q1"},
		{Month{2025, time.March}, "2025-Q1"},
		{Month{2025, time.April}, "2025-Q2"},
		{Month{2025, time.December}, "2025-Q4"},
	}
	for _, c := range cases {
		if got := c.m.Quarter(); got != c.want {
			t.Errorf("%v.Quarter() = %q, want %q", c.m, got, c.want)
		}
	}
}
