package cmd

import (
	"fmt"
	"os"

	"github.com/runcastdev/runcast/internal/cli"
	"github.com/runcastdev/runcast/internal/config"
	"github.com/runcastdev/runcast/internal/forecast"
	"github.com/runcastdev/runcast/internal/model"

	"github.com/spf13/cobra"
)

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Expected payment events by payment stage",
	RunE:  runCashflow,
}

// stageLabels maps event kinds to their table labels.
var stageLabels = map[model.EventKind]string{
	model.EventFirstPayment:    "first",
	model.EventSecondPayment:   "second",
	model.EventWarrantyPayment: "warranty",
}

func init() {
	rootCmd.AddCommand(cashflowCmd)
}

func runCashflow(_ *cobra.Command, _ []string) error {
	return withSnapshot(func(snap model.Snapshot, cfg config.Config) error {
		if len(snap.Projects) == 0 {
			fmt.Println("\n  No projects yet. Add one with `runcast projects add`.")
			return nil
		}

		events, warnings := forecast.CashFlowEvents(snap.Projects)
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, cli.WarnStyle.Render("  warning: "+w))
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("CASH FLOW EVENTS"))
		fmt.Println()

		rows := make([][]string, 0, len(events)+2)
		var total float64
		for _, e := range events {
			total += e.Amount
			rows = append(rows, []string{
				truncate(e.ProjectName, 24),
				stageLabels[e.Kind],
				cli.FormatDate(e.Date),
				cli.FormatPercent(e.RatioPct),
				cli.FormatAmount(e.Amount),
			})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Total", "", "", "", cli.FormatAmount(total)})

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Project", "Stage", "Date", "Ratio", "Amount"},
			Rows:    rows,
		}))
		fmt.Println()

		monthly := forecast.MonthlyCashFlow(events)
		mRows := make([][]string, 0, len(monthly))
		var peak float64
		for _, m := range monthly {
			if m.Amount > peak {
				peak = m.Amount
			}
		}
		for _, m := range monthly {
			mRows = append(mRows, []string{
				cli.FormatMonth(m.Month),
				cli.FormatAmount(m.Amount),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Monthly inflow",
			Headers: []string{"Month", "Amount"},
			Rows:    mRows,
		}))

		if len(monthly) > 1 {
			values := make([]float64, len(monthly))
			for i, m := range monthly {
				values[i] = m.Amount
			}
			fmt.Printf("\n  %s  peak %s\n", cli.RenderSparkline(values), cli.FormatAmount(peak))
		}
		return nil
	})
}
