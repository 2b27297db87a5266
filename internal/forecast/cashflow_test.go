package forecast

import (
	"testing"

	"github.com/runcastdev/runcast/internal/model"
)

func TestCashFlowEvents_ThreeStagesPerProject(t *testing.T) {
	p := model.Project{
		ID:               "p1",
		Name:             "demo",
		DeliveryDate:     mustDate(t, "2026-03-15"),
		CorrectedRevenue: 80,
		Ratios:           model.PaymentRatios{First: 50, Second: 40, Final: 10},
		BusinessLine:     "automation",
	}
	events, warnings := CashFlowEvents([]model.Project{p})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}

	byKind := make(map[model.EventKind]model.CashFlowEvent)
	for _, e := range events {
		byKind[e.Kind] = e
	}

	first := byKind[model.EventFirstPayment]
	if !first.Date.Equal(p.DeliveryDate) {
		t.Fatalf("first payment date = %s", first.Date.Format("2006-01-02"))
	}
	within(t, first.Amount, 40, 1e-9, "first payment")

	second := byKind[model.EventSecondPayment]
	if second.Date != mustDate(t, "2026-04-15") {
		t.Fatalf("second payment date = %s", second.Date.Format("2006-01-02"))
	}
	within(t, second.Amount, 32, 1e-9, "second payment")

	warranty := byKind[model.EventWarrantyPayment]
	if warranty.Date != mustDate(t, "2027-03-15") {
		t.Fatalf("warranty payment date = %s", warranty.Date.Format("2006-01-02"))
	}
	within(t, warranty.Amount, 8, 1e-9, "warranty payment")
	if warranty.Month.Key() != "2027-03" {
		t.Fatalf("warranty month key = %q", warranty.Month.Key())
	}
}

func TestCashFlowEvents_MonthEndDeliveryClamps(t *testing.T) {
	p := model.Project{
		Name:             "eom",
		DeliveryDate:     mustDate(t, "2026-01-31"),
		CorrectedRevenue: 100,
		Ratios:           model.DefaultPaymentRatios,
	}
	events, _ := CashFlowEvents([]model.Project{p})
	for _, e := range events {
		if e.Kind == model.EventSecondPayment {
			if e.Date != mustDate(t, "2026-02-28") {
				t.Fatalf("second payment = %s, want 2026-02-28", e.Date.Format("2006-01-02"))
			}
		}
	}
}

func TestCashFlowEvents_AmountsSumToRatioShare(t *testing.T) {
	// Ratios that do not reach 100: events still emit, plus a warning.
	p := model.Project{
		Name:             "short",
		DeliveryDate:     mustDate(t, "2026-05-01"),
		CorrectedRevenue: 200,
		Ratios:           model.PaymentRatios{First: 30, Second: 30, Final: 20},
	}
	events, warnings := CashFlowEvents([]model.Project{p})
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want one ratio warning", warnings)
	}

	sum := 0.0
	for _, e := range events {
		sum += e.Amount
	}
	within(t, sum, 200*0.8, 1e-9, "event total")
}

func TestCashFlowEvents_ExactHundredSumsToCorrected(t *testing.T) {
	p := model.Project{
		Name:             "exact",
		DeliveryDate:     mustDate(t, "2026-05-01"),
		CorrectedRevenue: 123.45,
		Ratios:           model.PaymentRatios{First: 33.4, Second: 33.3, Final: 33.3},
	}
	events, warnings := CashFlowEvents([]model.Project{p})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	sum := 0.0
	for _, e := range events {
		sum += e.Amount
	}
	within(t, sum, 123.45, 1e-9, "event total")
}

func TestCashFlowEvents_SortedByDate(t *testing.T) {
	projects := []model.Project{
		{Name: "b", DeliveryDate: mustDate(t, "2026-06-01"), CorrectedRevenue: 10, Ratios: model.DefaultPaymentRatios},
		{Name: "a", DeliveryDate: mustDate(t, "2026-01-01"), CorrectedRevenue: 10, Ratios: model.DefaultPaymentRatios},
	}
	events, _ := CashFlowEvents(projects)
	for i := 1; i < len(events); i++ {
		if events[i].Date.Before(events[i-1].Date) {
			t.Fatalf("events out of order at %d: %s before %s",
				i, events[i].Date, events[i-1].Date)
		}
	}
}

func TestMonthlyCashFlow_GroupsByMonth(t *testing.T) {
	projects := []model.Project{
		{Name: "a", DeliveryDate: mustDate(t, "2026-01-10"), CorrectedRevenue: 100, Ratios: model.DefaultPaymentRatios},
		{Name: "b", DeliveryDate: mustDate(t, "2026-01-20"), CorrectedRevenue: 100, Ratios: model.DefaultPaymentRatios},
	}
	events, _ := CashFlowEvents(projects)
	monthly := MonthlyCashFlow(events)

	// Both first payments in 2026-01, both second payments in 2026-02,
	// both warranty payments in 2027-01.
	if len(monthly) != 3 {
		t.Fatalf("monthly buckets = %d, want 3", len(monthly))
	}
	if monthly[0].Month.Key() != "2026-01" {
		t.Fatalf("first bucket = %q", monthly[0].Month.Key())
	}
	within(t, monthly[0].Amount, 100, 1e-9, "January total")
	within(t, monthly[1].Amount, 80, 1e-9, "February total")
	within(t, monthly[2].Amount, 20, 1e-9, "warranty total")
}
