package forecast

import (
	"sort"

	"github.com/runcastdev/runcast/internal/model"
)

// Ledger outer-joins every per-month series — corrected revenue by delivery
// month, material, labor, admin, and one-off income/expense — into the
// monthly budget ledger. A month with activity in any single category gets a
// row with zeros everywhere else. Rows are sorted by actual chronology, not
// by the string form of the month key.
func Ledger(snap model.Snapshot, table RatioTable) []model.LedgerRow {
	rows := make(map[model.Month]*model.LedgerRow)
	at := func(m model.Month) *model.LedgerRow {
		row, ok := rows[m]
		if !ok {
			row = &model.LedgerRow{Month: m}
			rows[m] = row
		}
		return row
	}

	for _, p := range snap.Projects {
		at(model.MonthOf(p.DeliveryDate)).Revenue += p.CorrectedRevenue
	}
	for _, mc := range MaterialCosts(snap.Projects, table) {
		at(mc.Month).MaterialCost += mc.Amount
	}
	for _, lc := range AmortizeLabor(snap.LaborCosts) {
		at(lc.Month).LaborCost += lc.Amount
	}
	for _, ac := range ExpandAdmin(snap.AdminCosts) {
		at(ac.Month).AdminCost += ac.Amount
	}
	for _, e := range snap.Occasional {
		switch e.Kind {
		case model.EntryIncome:
			at(model.MonthOf(e.Date)).OccasionalIncome += e.Amount
		case model.EntryExpense:
			at(model.MonthOf(e.Date)).OccasionalExpense += e.Amount
		}
	}

	out := make([]model.LedgerRow, 0, len(rows))
	for _, row := range rows {
		row.TotalRevenue = row.Revenue + row.OccasionalIncome
		row.TotalExpense = row.MaterialCost + row.LaborCost + row.AdminCost + row.OccasionalExpense
		row.GrossProfit = row.TotalRevenue - row.TotalExpense
		if row.TotalRevenue > 0 {
			row.GrossMarginPct = row.GrossProfit / row.TotalRevenue * 100
		}
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}
