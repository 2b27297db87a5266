package forecast

import "github.com/runcastdev/runcast/internal/model"

// ExpandAdmin turns each administrative cost record into dated monthly
// amounts according to its payment frequency:
//
//   - monthly: one payment of the monthly rate in every month of the
//     interval
//   - quarterly: one payment of three months' rate every third month,
//     starting at the interval's first month
//   - yearly: a single payment of twelve months' rate at the first month,
//     regardless of how long the interval runs. A multi-year record is
//     therefore under-counted.
func ExpandAdmin(records []model.AdminCostRecord) []model.MonthlyCost {
	var out []model.MonthlyCost
	for _, r := range records {
		first := model.MonthOf(r.Start)
		last := model.MonthOf(r.End)

		emit := func(m model.Month, amount float64) {
			out = append(out, model.MonthlyCost{
				RecordID: r.ID,
				Category: r.Category,
				Label:    r.Item,
				Month:    m,
				Amount:   amount,
			})
		}

		switch r.Frequency {
		case model.FrequencyMonthly:
			for m := first; !m.After(last); m = m.Add(1) {
				emit(m, r.MonthlyCost)
			}
		case model.FrequencyQuarterly:
			for m := first; !m.After(last); m = m.Add(3) {
				emit(m, r.MonthlyCost*3)
			}
		case model.FrequencyYearly:
			emit(first, r.MonthlyCost*12)
		}
	}
	sortMonthlyCosts(out)
	return out
}
