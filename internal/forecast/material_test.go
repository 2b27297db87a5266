package forecast

import (
	"testing"

	"github.com/runcastdev/runcast/internal/model"
)

func TestMaterialCosts_RatioLookupAndFallback(t *testing.T) {
	table := RatioTable{
		Ratios:  map[string]float64{"automation": 0.40, "spectroscopy": 0.30},
		Default: 0.30,
	}
	projects := []model.Project{
		{ID: "p1", Name: "a", BusinessLine: "automation", CorrectedRevenue: 100, DeliveryDate: mustDate(t, "2026-03-15")},
		{ID: "p2", Name: "b", BusinessLine: "consulting", CorrectedRevenue: 50, DeliveryDate: mustDate(t, "2026-03-15")},
	}
	costs := MaterialCosts(projects, table)
	if len(costs) != 2 {
		t.Fatalf("costs = %d, want 2", len(costs))
	}

	within(t, costs[0].Amount, 40, 1e-9, "known line")
	within(t, costs[1].Amount, 15, 1e-9, "fallback line")
	within(t, costs[1].RatioPct, 30, 1e-9, "fallback ratio pct")
}

func TestMaterialCosts_MonthBeforeDelivery(t *testing.T) {
	table := RatioTable{Default: 0.5}
	projects := []model.Project{
		{Name: "jan", DeliveryDate: mustDate(t, "2026-01-15"), CorrectedRevenue: 10},
	}
	costs := MaterialCosts(projects, table)
	if got := costs[0].Month.Key(); got != "2025-12" {
		t.Fatalf("material month = %q, want 2025-12", got)
	}
}
