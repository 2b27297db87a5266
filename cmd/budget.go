package cmd

import (
	"fmt"

	"github.com/runcastdev/runcast/internal/cli"
	"github.com/runcastdev/runcast/internal/config"
	"github.com/runcastdev/runcast/internal/forecast"
	"github.com/runcastdev/runcast/internal/model"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Monthly budget ledger",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	return withSnapshot(func(snap model.Snapshot, cfg config.Config) error {
		ledger := forecast.Ledger(snap, ratioTable(cfg))
		if len(ledger) == 0 {
			fmt.Println("\n  Nothing to forecast yet. Add projects and cost schedules first.")
			return nil
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("MONTHLY BUDGET"))
		fmt.Println()

		rows := make([][]string, 0, len(ledger)+2)
		var totals model.LedgerRow
		for _, row := range ledger {
			totals.Revenue += row.Revenue
			totals.MaterialCost += row.MaterialCost
			totals.LaborCost += row.LaborCost
			totals.AdminCost += row.AdminCost
			totals.OccasionalIncome += row.OccasionalIncome
			totals.OccasionalExpense += row.OccasionalExpense
			totals.TotalRevenue += row.TotalRevenue
			totals.TotalExpense += row.TotalExpense
			totals.GrossProfit += row.GrossProfit

			rows = append(rows, []string{
				cli.FormatMonth(row.Month),
				cli.FormatAmount(row.Revenue),
				cli.FormatAmount(row.OccasionalIncome),
				cli.FormatAmount(row.MaterialCost),
				cli.FormatAmount(row.LaborCost),
				cli.FormatAmount(row.AdminCost),
				cli.FormatAmount(row.OccasionalExpense),
				cli.FormatAmount(row.GrossProfit),
				cli.FormatPercent(row.GrossMarginPct),
			})
		}

		marginTotal := 0.0
		if totals.TotalRevenue > 0 {
			marginTotal = totals.GrossProfit / totals.TotalRevenue * 100
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{
			"Total",
			cli.FormatAmount(totals.Revenue),
			cli.FormatAmount(totals.OccasionalIncome),
			cli.FormatAmount(totals.MaterialCost),
			cli.FormatAmount(totals.LaborCost),
			cli.FormatAmount(totals.AdminCost),
			cli.FormatAmount(totals.OccasionalExpense),
			cli.FormatAmount(totals.GrossProfit),
			cli.FormatPercent(marginTotal),
		})

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Month", "Revenue", "Occ in", "Material", "Labor", "Admin", "Occ out", "Profit", "Margin"},
			Rows:    rows,
		}))

		fmt.Println()
		maxProfit := 0.0
		for _, row := range ledger {
			if row.GrossProfit > maxProfit {
				maxProfit = row.GrossProfit
			}
		}
		for _, row := range ledger {
			if row.GrossProfit > 0 {
				fmt.Println(cli.RenderHorizontalBar(cli.FormatMonth(row.Month), row.GrossProfit, maxProfit, 30))
			}
		}
		return nil
	})
}
