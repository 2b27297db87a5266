package forecast

import (
	"testing"

	"github.com/runcastdev/runcast/internal/model"
)

func adminRecord(t *testing.T, freq model.PaymentFrequency, monthly float64, start, end string) model.AdminCostRecord {
	t.Helper()
	return model.AdminCostRecord{
		ID:          "a1",
		Category:    "rent",
		Item:        "HQ",
		MonthlyCost: monthly,
		Start:       mustDate(t, start),
		End:         mustDate(t, end),
		Frequency:   freq,
	}
}

func TestExpandAdmin_Monthly(t *testing.T) {
	r := adminRecord(t, model.FrequencyMonthly, 10, "2025-01-01", "2025-06-30")
	costs := ExpandAdmin([]model.AdminCostRecord{r})
	if len(costs) != 6 {
		t.Fatalf("events = %d, want 6", len(costs))
	}
	for _, c := range costs {
		within(t, c.Amount, 10, 1e-9, c.Month.Key())
	}
}

func TestExpandAdmin_Quarterly(t *testing.T) {
	r := adminRecord(t, model.FrequencyQuarterly, 3, "2025-01-01", "2025-12-31")
	costs := ExpandAdmin([]model.AdminCostRecord{r})
	if len(costs) != 4 {
		t.Fatalf("events = %d, want 4", len(costs))
	}
	wantMonths := []string{"2025-01", "2025-04", "2025-07", "2025-10"}
	for i, c := range costs {
		if c.Month.Key() != wantMonths[i] {
			t.Errorf("event %d month = %q, want %q", i, c.Month.Key(), wantMonths[i])
		}
		within(t, c.Amount, 9, 1e-9, c.Month.Key())
	}
}

func TestExpandAdmin_QuarterlyMidMonthStart(t *testing.T) {
	// The schedule runs on calendar months; a mid-month start still counts
	// its own month as the first payment.
	r := adminRecord(t, model.FrequencyQuarterly, 2, "2025-02-15", "2025-08-31")
	costs := ExpandAdmin([]model.AdminCostRecord{r})
	wantMonths := []string{"2025-02", "2025-05", "2025-08"}
	if len(costs) != len(wantMonths) {
		t.Fatalf("events = %d, want %d", len(costs), len(wantMonths))
	}
	for i, c := range costs {
		if c.Month.Key() != wantMonths[i] {
			t.Errorf("event %d month = %q, want %q", i, c.Month.Key(), wantMonths[i])
		}
	}
}

func TestExpandAdmin_YearlySingleEvent(t *testing.T) {
	// A yearly record emits exactly one payment at its first month, even
	// over a multi-year interval. Preserved behavior; see DESIGN.md.
	r := adminRecord(t, model.FrequencyYearly, 5, "2025-03-01", "2027-12-31")
	costs := ExpandAdmin([]model.AdminCostRecord{r})
	if len(costs) != 1 {
		t.Fatalf("events = %d, want 1", len(costs))
	}
	if costs[0].Month.Key() != "2025-03" {
		t.Fatalf("event month = %q", costs[0].Month.Key())
	}
	within(t, costs[0].Amount, 60, 1e-9, "yearly amount")
}

func TestExpandAdmin_EmptyInput(t *testing.T) {
	if costs := ExpandAdmin(nil); len(costs) != 0 {
		t.Fatalf("expected no events, got %d", len(costs))
	}
}
