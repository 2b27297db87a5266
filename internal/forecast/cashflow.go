package forecast

import (
	"fmt"
	"math"
	"sort"

	"github.com/runcastdev/runcast/internal/model"
)

// eventOrder fixes the within-project ordering of the three payment stages.
var eventOrder = map[model.EventKind]int{
	model.EventFirstPayment:    0,
	model.EventSecondPayment:   1,
	model.EventWarrantyPayment: 2,
}

// CashFlowEvents expands every project into its three dated payment events:
// the first payment at delivery, the second one calendar month later, and
// the warranty holdback twelve months later. Events are emitted with the
// project's ratios as given even when they do not sum to 100; each such
// project adds an advisory warning for the caller to surface.
func CashFlowEvents(projects []model.Project) ([]model.CashFlowEvent, []string) {
	var events []model.CashFlowEvent
	var warnings []string

	for _, p := range projects {
		if sum := p.Ratios.Sum(); math.Abs(sum-100) > model.RatioSumTolerance {
			warnings = append(warnings, fmt.Sprintf(
				"project %q: payment ratios sum to %.1f%%, not 100%%", p.Name, sum))
		}

		stages := []struct {
			kind        model.EventKind
			monthOffset int
			ratioPct    float64
		}{
			{model.EventFirstPayment, 0, p.Ratios.First},
			{model.EventSecondPayment, 1, p.Ratios.Second},
			{model.EventWarrantyPayment, 12, p.Ratios.Final},
		}
		for _, s := range stages {
			date := model.AddMonths(p.DeliveryDate, s.monthOffset)
			events = append(events, model.CashFlowEvent{
				ProjectID:    p.ID,
				ProjectName:  p.Name,
				Kind:         s.kind,
				Date:         date,
				Month:        model.MonthOf(date),
				Amount:       p.CorrectedRevenue * s.ratioPct / 100,
				BusinessLine: p.BusinessLine,
				RatioPct:     s.ratioPct,
			})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.ProjectName != b.ProjectName {
			return a.ProjectName < b.ProjectName
		}
		return eventOrder[a.Kind] < eventOrder[b.Kind]
	})
	return events, warnings
}

// MonthlyCashFlow sums event amounts per calendar month, in chronological
// order.
func MonthlyCashFlow(events []model.CashFlowEvent) []model.MonthlyCost {
	byMonth := make(map[model.Month]float64)
	for _, e := range events {
		byMonth[e.Month] += e.Amount
	}
	out := make([]model.MonthlyCost, 0, len(byMonth))
	for m, amount := range byMonth {
		out = append(out, model.MonthlyCost{Month: m, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}
