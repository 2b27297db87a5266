package forecast

import (
	"sort"

	"github.com/runcastdev/runcast/internal/model"
)

// AmortizeLabor spreads each labor cost record over the calendar months its
// interval overlaps, weighting partial first and last months by elapsed
// days. Each month's own day count is the denominator, so the total over a
// multi-month span only approximates rate times months.
func AmortizeLabor(records []model.LaborCostRecord) []model.MonthlyCost {
	var out []model.MonthlyCost
	for _, r := range records {
		first := model.MonthOf(r.Start)
		last := model.MonthOf(r.End)
		for m := first; !m.After(last); m = m.Add(1) {
			fromDay := 1
			if m == first {
				fromDay = r.Start.Day()
			}
			toDay := m.Days()
			if m == last {
				toDay = r.End.Day()
			}
			days := toDay - fromDay + 1
			out = append(out, model.MonthlyCost{
				RecordID: r.ID,
				Category: r.Category,
				Label:    r.Resource,
				Month:    m,
				Amount:   r.MonthlyCost * float64(days) / float64(m.Days()),
			})
		}
	}
	sortMonthlyCosts(out)
	return out
}

func sortMonthlyCosts(costs []model.MonthlyCost) {
	sort.Slice(costs, func(i, j int) bool {
		if c := costs[i].Month.Compare(costs[j].Month); c != 0 {
			return c < 0
		}
		if costs[i].Category != costs[j].Category {
			return costs[i].Category < costs[j].Category
		}
		return costs[i].Label < costs[j].Label
	})
}
