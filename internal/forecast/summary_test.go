package forecast

import (
	"testing"

	"github.com/runcastdev/runcast/internal/model"
)

func TestSummarize_QuartersAndLines(t *testing.T) {
	base := mustDate(t, "2025-12-08")
	projects := []model.Project{
		{Name: "a", DeliveryDate: mustDate(t, "2026-02-10"), ContractAmount: 100, CloseRatePct: 50, BusinessLine: "spectroscopy", CorrectedRevenue: 45},
		{Name: "b", DeliveryDate: mustDate(t, "2026-03-20"), ContractAmount: 200, CloseRatePct: 80, BusinessLine: "automation", CorrectedRevenue: 150},
		{Name: "c", DeliveryDate: mustDate(t, "2026-06-01"), ContractAmount: 50, CloseRatePct: 100, BusinessLine: "automation", CorrectedRevenue: 40},
	}
	revs := ProjectRevenues(projects, DefaultDecayCoefficient, base)
	quarters, lines, totals := Summarize(revs)

	if len(quarters) != 2 {
		t.Fatalf("quarters = %d, want 2", len(quarters))
	}
	if quarters[0].Quarter != "2026-Q1" || quarters[1].Quarter != "2026-Q2" {
		t.Fatalf("quarter labels = %q, %q", quarters[0].Quarter, quarters[1].Quarter)
	}
	within(t, quarters[0].Revenue, 195, 1e-9, "Q1 revenue")
	if quarters[0].Projects != 2 {
		t.Fatalf("Q1 projects = %d", quarters[0].Projects)
	}
	within(t, quarters[1].CumulativePct, 100, 1e-9, "last quarter cumulative share")

	// Lines sorted by revenue, descending.
	if len(lines) != 2 || lines[0].BusinessLine != "automation" {
		t.Fatalf("lines = %+v", lines)
	}
	within(t, lines[0].Revenue, 190, 1e-9, "automation revenue")
	within(t, lines[0].ContributionPct, 190.0/235*100, 1e-9, "automation contribution")

	if totals.Projects != 3 {
		t.Fatalf("totals.Projects = %d", totals.Projects)
	}
	within(t, totals.CorrectedRevenue, 235, 1e-9, "corrected total")
	within(t, totals.ContractTotal, 350, 1e-9, "contract total")
	within(t, totals.ConversionPct, 235.0/350*100, 1e-9, "conversion")
}

func TestSummarize_Empty(t *testing.T) {
	quarters, lines, totals := Summarize(nil)
	if len(quarters) != 0 || len(lines) != 0 {
		t.Fatal("expected empty summaries")
	}
	if totals.AvgDecay != 0 || totals.ConversionPct != 0 {
		t.Fatalf("totals = %+v, want zeros", totals)
	}
}
