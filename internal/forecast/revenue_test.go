package forecast

import (
	"math"
	"testing"
	"time"

	"github.com/runcastdev/runcast/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func within(t *testing.T, got, want, eps float64, what string) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Fatalf("%s = %v, want %v (±%v)", what, got, want, eps)
	}
}

func TestDecayFactor_Bounds(t *testing.T) {
	if got := DecayFactor(DefaultDecayCoefficient, 0); got != 1 {
		t.Fatalf("DecayFactor(0) = %v, want 1", got)
	}
	prev := 1.0
	for months := 1; months <= 60; months++ {
		f := DecayFactor(DefaultDecayCoefficient, months)
		if f <= 0 || f > 1 {
			t.Fatalf("DecayFactor(%d) = %v out of (0,1]", months, f)
		}
		if f >= prev {
			t.Fatalf("DecayFactor not strictly decreasing at %d months: %v >= %v", months, f, prev)
		}
		prev = f
	}
}

func TestDecayFactor_NegativeMonthsClampToOne(t *testing.T) {
	if got := DecayFactor(DefaultDecayCoefficient, -5); got != 1 {
		t.Fatalf("DecayFactor(-5) = %v, want 1", got)
	}
}

func TestExpectedRevenue_ThreeMonthsOut(t *testing.T) {
	base := mustDate(t, "2025-12-08")
	p := model.Project{
		Name:           "demo",
		DeliveryDate:   mustDate(t, "2026-03-15"),
		ContractAmount: 100,
		CloseRatePct:   50,
	}
	got := ExpectedRevenue(p, DefaultDecayCoefficient, base)
	within(t, got, 45.49, 0.01, "ExpectedRevenue")
}

func TestExpectedRevenue_PastDeliveryNoDecay(t *testing.T) {
	base := mustDate(t, "2025-12-08")
	p := model.Project{
		DeliveryDate:   mustDate(t, "2025-06-01"), // already behind the base date
		ContractAmount: 200,
		CloseRatePct:   80,
	}
	got := ExpectedRevenue(p, DefaultDecayCoefficient, base)
	within(t, got, 160, 1e-9, "ExpectedRevenue")
}

func TestProjectRevenues_SortedByDelivery(t *testing.T) {
	base := mustDate(t, "2025-12-08")
	projects := []model.Project{
		{Name: "later", DeliveryDate: mustDate(t, "2026-06-20"), ContractAmount: 150, CloseRatePct: 80},
		{Name: "sooner", DeliveryDate: mustDate(t, "2026-03-15"), ContractAmount: 100, CloseRatePct: 50},
	}
	revs := ProjectRevenues(projects, DefaultDecayCoefficient, base)
	if len(revs) != 2 {
		t.Fatalf("len = %d", len(revs))
	}
	if revs[0].Project.Name != "sooner" {
		t.Fatalf("first project = %q", revs[0].Project.Name)
	}
	if revs[0].MonthsOut != 3 || revs[1].MonthsOut != 6 {
		t.Fatalf("months out = %d, %d", revs[0].MonthsOut, revs[1].MonthsOut)
	}
	within(t, revs[0].DecayFactor, 0.9098, 0.0001, "decay factor")
}
