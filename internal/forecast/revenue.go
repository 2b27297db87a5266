// Package forecast turns a snapshot of projects and cost schedules into the
// derived budget artifacts: risk-adjusted revenue, dated cash-flow events,
// amortized costs, the monthly ledger, and the cash-runway projection. Every
// function is a pure pass over its inputs; nothing here holds state or
// mutates a snapshot.
package forecast

import (
	"math"
	"sort"
	"time"

	"github.com/runcastdev/runcast/internal/model"
)

// DefaultDecayCoefficient is the industry-baseline λ for the time-decay
// model.
const DefaultDecayCoefficient = 0.0315

// DecayFactor returns e^(-λ·monthsOut), the probability-erosion multiplier
// for a deal delivering monthsOut calendar months after the base date.
// Deliveries at or before the base date carry no decay (factor 1).
func DecayFactor(lambda float64, monthsOut int) float64 {
	if monthsOut < 0 {
		monthsOut = 0
	}
	return math.Exp(-lambda * float64(monthsOut))
}

// ExpectedRevenue computes the risk-adjusted revenue of one project:
// contract amount, discounted by the close-rate estimate and the time-decay
// factor at the given base date.
func ExpectedRevenue(p model.Project, lambda float64, base time.Time) float64 {
	monthsOut := model.MonthsBetween(base, p.DeliveryDate)
	return p.ContractAmount * p.CloseRatePct / 100 * DecayFactor(lambda, monthsOut)
}

// ProjectRevenues computes the revenue model fields for every project,
// sorted by delivery date. CorrectedRevenue on the returned projects is
// whatever the snapshot carries; the model never overwrites a stored value.
func ProjectRevenues(projects []model.Project, lambda float64, base time.Time) []model.ProjectRevenue {
	out := make([]model.ProjectRevenue, 0, len(projects))
	for _, p := range projects {
		monthsOut := model.MonthsBetween(base, p.DeliveryDate)
		if monthsOut < 0 {
			monthsOut = 0
		}
		factor := DecayFactor(lambda, monthsOut)
		out = append(out, model.ProjectRevenue{
			Project:         p,
			MonthsOut:       monthsOut,
			DecayFactor:     factor,
			ExpectedRevenue: p.ContractAmount * p.CloseRatePct / 100 * factor,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Project, out[j].Project
		if !a.DeliveryDate.Equal(b.DeliveryDate) {
			return a.DeliveryDate.Before(b.DeliveryDate)
		}
		return a.Name < b.Name
	})
	return out
}
