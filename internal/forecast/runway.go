package forecast

import "github.com/runcastdev/runcast/internal/model"

// Runway walks the ledger's net cash flow month by month from the starting
// balance and returns the cumulative-balance series plus the runway length:
// the number of consecutive leading months whose balance stays strictly
// positive. The scan stops at, and does not count, the first month at or
// below zero. If the balance never dips, the runway spans the whole
// projected horizon.
func Runway(ledger []model.LedgerRow, startingBalance float64) ([]model.RunwayRow, int) {
	rows := make([]model.RunwayRow, 0, len(ledger))
	balance := startingBalance
	for _, lr := range ledger {
		net := lr.TotalRevenue - lr.TotalExpense
		balance += net
		rows = append(rows, model.RunwayRow{
			Month:   lr.Month,
			NetFlow: net,
			Balance: balance,
		})
	}

	months := 0
	for _, r := range rows {
		if r.Balance <= 0 {
			break
		}
		months++
	}
	return rows, months
}
