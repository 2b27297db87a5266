package forecast

import (
	"sort"

	"github.com/runcastdev/runcast/internal/model"
)

// RatioTable maps a business line to the fraction of corrected revenue
// spent on material, with a fallback for lines the table does not name.
type RatioTable struct {
	Ratios  map[string]float64
	Default float64
}

// Lookup returns the material ratio for a business line.
func (t RatioTable) Lookup(line string) float64 {
	if r, ok := t.Ratios[line]; ok {
		return r
	}
	return t.Default
}

// MaterialCosts derives each project's material spend from its business
// line's ratio. The cost lands one calendar month before delivery, since
// material is procured ahead of it.
func MaterialCosts(projects []model.Project, table RatioTable) []model.MaterialCost {
	out := make([]model.MaterialCost, 0, len(projects))
	for _, p := range projects {
		ratio := table.Lookup(p.BusinessLine)
		out = append(out, model.MaterialCost{
			ProjectID:    p.ID,
			ProjectName:  p.Name,
			BusinessLine: p.BusinessLine,
			RatioPct:     ratio * 100,
			Amount:       p.CorrectedRevenue * ratio,
			Month:        model.MonthOf(model.AddMonths(p.DeliveryDate, -1)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Month.Compare(out[j].Month); c != 0 {
			return c < 0
		}
		return out[i].ProjectName < out[j].ProjectName
	})
	return out
}
