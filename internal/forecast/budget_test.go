package forecast

import (
	"reflect"
	"testing"

	"github.com/runcastdev/runcast/internal/model"
)

func testSnapshot(t *testing.T) model.Snapshot {
	t.Helper()
	return model.Snapshot{
		Projects: []model.Project{{
			ID:               "p1",
			Name:             "demo",
			DeliveryDate:     mustDate(t, "2025-04-10"),
			CorrectedRevenue: 100,
			BusinessLine:     "automation",
			Ratios:           model.DefaultPaymentRatios,
		}},
		LaborCosts: []model.LaborCostRecord{{
			ID: "l1", Category: "research", Resource: "rd",
			MonthlyCost: 30,
			Start:       mustDate(t, "2025-04-01"),
			End:         mustDate(t, "2025-05-31"),
		}},
		AdminCosts: []model.AdminCostRecord{{
			ID: "a1", Category: "rent", Item: "HQ",
			MonthlyCost: 10,
			Start:       mustDate(t, "2025-04-01"),
			End:         mustDate(t, "2025-04-30"),
			Frequency:   model.FrequencyMonthly,
		}},
		Occasional: []model.OccasionalEntry{
			{ID: "o1", Kind: model.EntryIncome, Label: "grant", Amount: 20, Date: mustDate(t, "2025-06-05")},
			{ID: "o2", Kind: model.EntryExpense, Label: "laptop", Amount: 5, Date: mustDate(t, "2025-04-20")},
		},
	}
}

func testRatios() RatioTable {
	return RatioTable{
		Ratios:  map[string]float64{"automation": 0.40},
		Default: 0.30,
	}
}

func TestLedger_MonthUnionAndZeroFill(t *testing.T) {
	rows := Ledger(testSnapshot(t), testRatios())

	// Material lands in March (month before delivery), revenue/labor/admin
	// in April, labor again in May, occasional income in June.
	wantMonths := []string{"2025-03", "2025-04", "2025-05", "2025-06"}
	if len(rows) != len(wantMonths) {
		t.Fatalf("rows = %d, want %d", len(rows), len(wantMonths))
	}
	for i, r := range rows {
		if r.Month.Key() != wantMonths[i] {
			t.Fatalf("row %d month = %q, want %q", i, r.Month.Key(), wantMonths[i])
		}
	}

	march := rows[0]
	within(t, march.MaterialCost, 40, 1e-9, "March material")
	if march.Revenue != 0 || march.LaborCost != 0 || march.AdminCost != 0 {
		t.Fatalf("March should be zero outside material: %+v", march)
	}

	june := rows[3]
	within(t, june.OccasionalIncome, 20, 1e-9, "June occasional income")
	within(t, june.TotalRevenue, 20, 1e-9, "June total revenue")
}

func TestLedger_DerivedTotalsAndMargin(t *testing.T) {
	rows := Ledger(testSnapshot(t), testRatios())
	april := rows[1]

	within(t, april.Revenue, 100, 1e-9, "April revenue")
	within(t, april.LaborCost, 30, 1e-9, "April labor")
	within(t, april.AdminCost, 10, 1e-9, "April admin")
	within(t, april.OccasionalExpense, 5, 1e-9, "April occasional expense")
	within(t, april.TotalExpense, 45, 1e-9, "April total expense")
	within(t, april.GrossProfit, 55, 1e-9, "April gross profit")
	within(t, april.GrossMarginPct, 55, 1e-9, "April margin")
}

func TestLedger_MarginZeroWhenNoRevenue(t *testing.T) {
	rows := Ledger(testSnapshot(t), testRatios())
	march := rows[0] // cost only
	if march.GrossMarginPct != 0 {
		t.Fatalf("margin with zero revenue = %v, want 0", march.GrossMarginPct)
	}
	if march.GrossProfit >= 0 {
		t.Fatalf("gross profit should be negative, got %v", march.GrossProfit)
	}
}

func TestLedger_EmptySnapshot(t *testing.T) {
	rows := Ledger(model.Snapshot{}, testRatios())
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rows))
	}
}

func TestLedger_Deterministic(t *testing.T) {
	snap := testSnapshot(t)
	table := testRatios()
	first := Ledger(snap, table)
	second := Ledger(snap, table)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("recomputing the ledger from the same snapshot changed the output")
	}
}
