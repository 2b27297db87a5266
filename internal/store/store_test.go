package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/runcastdev/runcast/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runcast.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testProject(t *testing.T, name string, delivery string) model.Project {
	t.Helper()
	d, err := time.Parse(dateFormat, delivery)
	if err != nil {
		t.Fatalf("parsing %q: %v", delivery, err)
	}
	p, err := model.NewProject(name, d, 100, 50, "automation", model.DefaultPaymentRatios)
	if err != nil {
		t.Fatalf("NewProject: %v", err)
	}
	p.CorrectedRevenue = 45
	return p
}

func TestProjects_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	p := testProject(t, "line-a retrofit", "2026-03-15")
	if err := s.AddProject(p); err != nil {
		t.Fatalf("AddProject: %v", err)
	}

	got, err := s.Project(p.ID)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if got.Name != p.Name || !got.DeliveryDate.Equal(p.DeliveryDate) {
		t.Fatalf("got %+v, want %+v", got, p)
	}
	if got.Ratios != p.Ratios {
		t.Fatalf("ratios = %+v, want %+v", got.Ratios, p.Ratios)
	}
	if got.CorrectedRevenue != 45 {
		t.Fatalf("corrected revenue = %v", got.CorrectedRevenue)
	}
}

func TestProjects_OrderedByDelivery(t *testing.T) {
	s := openTestStore(t)

	late := testProject(t, "late", "2026-06-01")
	early := testProject(t, "early", "2026-01-01")
	for _, p := range []model.Project{late, early} {
		if err := s.AddProject(p); err != nil {
			t.Fatalf("AddProject: %v", err)
		}
	}

	projects, err := s.Projects()
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if len(projects) != 2 || projects[0].Name != "early" {
		t.Fatalf("projects = %+v", projects)
	}
}

func TestUpdateProject(t *testing.T) {
	s := openTestStore(t)

	p := testProject(t, "deal", "2026-03-15")
	if err := s.AddProject(p); err != nil {
		t.Fatalf("AddProject: %v", err)
	}

	p.CorrectedRevenue = 80
	p.Ratios = model.PaymentRatios{First: 30, Second: 60, Final: 10}
	if err := s.UpdateProject(p); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}

	got, err := s.Project(p.ID)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if got.CorrectedRevenue != 80 || got.Ratios.Second != 60 {
		t.Fatalf("got %+v", got)
	}
}

func TestUpdateDelete_UnknownID(t *testing.T) {
	s := openTestStore(t)

	p := testProject(t, "ghost", "2026-03-15")
	if err := s.UpdateProject(p); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateProject err = %v, want ErrNotFound", err)
	}
	if err := s.DeleteProject("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteProject err = %v, want ErrNotFound", err)
	}
	if _, err := s.Project("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Project err = %v, want ErrNotFound", err)
	}
	if err := s.DeleteLaborCost("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteLaborCost err = %v, want ErrNotFound", err)
	}
}

func TestDeleteProject(t *testing.T) {
	s := openTestStore(t)

	p := testProject(t, "doomed", "2026-03-15")
	if err := s.AddProject(p); err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	if err := s.DeleteProject(p.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	projects, err := s.Projects()
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("projects = %+v, want none", projects)
	}
}

func TestLaborCosts_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	start, _ := time.Parse(dateFormat, "2025-01-15")
	end, _ := time.Parse(dateFormat, "2025-12-31")
	r, err := model.NewLaborCostRecord("research", "firmware team", 30, start, end)
	if err != nil {
		t.Fatalf("NewLaborCostRecord: %v", err)
	}
	if err := s.AddLaborCost(r); err != nil {
		t.Fatalf("AddLaborCost: %v", err)
	}

	records, err := s.LaborCosts()
	if err != nil {
		t.Fatalf("LaborCosts: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	got := records[0]
	if got.Resource != "firmware team" || got.MonthlyCost != 30 || !got.Start.Equal(start) || !got.End.Equal(end) {
		t.Fatalf("got %+v", got)
	}

	got.MonthlyCost = 35
	if err := s.UpdateLaborCost(got); err != nil {
		t.Fatalf("UpdateLaborCost: %v", err)
	}
	records, _ = s.LaborCosts()
	if records[0].MonthlyCost != 35 {
		t.Fatalf("monthly cost = %v after update", records[0].MonthlyCost)
	}
}

func TestAdminCosts_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	start, _ := time.Parse(dateFormat, "2025-01-01")
	end, _ := time.Parse(dateFormat, "2025-12-31")
	r, err := model.NewAdminCostRecord("rent", "hq office", 3, start, end, model.FrequencyQuarterly)
	if err != nil {
		t.Fatalf("NewAdminCostRecord: %v", err)
	}
	if err := s.AddAdminCost(r); err != nil {
		t.Fatalf("AddAdminCost: %v", err)
	}

	records, err := s.AdminCosts()
	if err != nil {
		t.Fatalf("AdminCosts: %v", err)
	}
	if len(records) != 1 || records[0].Frequency != model.FrequencyQuarterly {
		t.Fatalf("records = %+v", records)
	}

	if err := s.DeleteAdminCost(r.ID); err != nil {
		t.Fatalf("DeleteAdminCost: %v", err)
	}
	records, _ = s.AdminCosts()
	if len(records) != 0 {
		t.Fatalf("records = %+v after delete", records)
	}
}

func TestOccasionalEntries_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	date, _ := time.Parse(dateFormat, "2025-06-10")
	e, err := model.NewOccasionalEntry(model.EntryIncome, "r&d grant", 20, date, "subsidy")
	if err != nil {
		t.Fatalf("NewOccasionalEntry: %v", err)
	}
	if err := s.AddOccasionalEntry(e); err != nil {
		t.Fatalf("AddOccasionalEntry: %v", err)
	}

	entries, err := s.OccasionalEntries()
	if err != nil {
		t.Fatalf("OccasionalEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	got := entries[0]
	if got.Kind != model.EntryIncome || got.Tag != "subsidy" || !got.Date.Equal(date) {
		t.Fatalf("got %+v", got)
	}

	got.Amount = 25
	if err := s.UpdateOccasionalEntry(got); err != nil {
		t.Fatalf("UpdateOccasionalEntry: %v", err)
	}
	entries, _ = s.OccasionalEntries()
	if entries[0].Amount != 25 {
		t.Fatalf("amount = %v after update", entries[0].Amount)
	}
}

func TestSnapshot_CombinesCollections(t *testing.T) {
	s := openTestStore(t)

	if err := s.AddProject(testProject(t, "deal", "2026-03-15")); err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	date, _ := time.Parse(dateFormat, "2025-06-10")
	e, _ := model.NewOccasionalEntry(model.EntryExpense, "test rig", 5, date, "")
	if err := s.AddOccasionalEntry(e); err != nil {
		t.Fatalf("AddOccasionalEntry: %v", err)
	}

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap.Projects) != 1 || len(snap.Occasional) != 1 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if len(snap.LaborCosts) != 0 || len(snap.AdminCosts) != 0 {
		t.Fatalf("snapshot = %+v", snap)
	}
}
