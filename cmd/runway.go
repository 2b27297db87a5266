package cmd

import (
	"fmt"

	"github.com/runcastdev/runcast/internal/cli"
	"github.com/runcastdev/runcast/internal/config"
	"github.com/runcastdev/runcast/internal/forecast"
	"github.com/runcastdev/runcast/internal/model"

	"github.com/spf13/cobra"
)

var runwayCmd = &cobra.Command{
	Use:   "runway",
	Short: "Cash runway projection",
	RunE:  runRunway,
}

func init() {
	rootCmd.AddCommand(runwayCmd)
}

func runRunway(_ *cobra.Command, _ []string) error {
	return withSnapshot(func(snap model.Snapshot, cfg config.Config) error {
		ledger := forecast.Ledger(snap, ratioTable(cfg))
		if len(ledger) == 0 {
			fmt.Println("\n  Nothing to project yet. Add projects and cost schedules first.")
			return nil
		}

		rows, months := forecast.Runway(ledger, cfg.Cash.StartingBalance)

		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("CASH RUNWAY  starting %s", cli.FormatAmount(cfg.Cash.StartingBalance))))
		fmt.Println()

		tRows := make([][]string, 0, len(rows))
		for _, r := range rows {
			marker := ""
			if r.Balance <= 0 {
				marker = "!"
			}
			tRows = append(tRows, []string{
				cli.FormatMonth(r.Month),
				cli.FormatSignedAmount(r.NetFlow),
				cli.FormatAmount(r.Balance),
				marker,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Month", "Net flow", "Balance", ""},
			Rows:    tRows,
		}))
		fmt.Println()

		values := make([]float64, len(rows))
		for i, r := range rows {
			values[i] = r.Balance
		}
		fmt.Printf("  %s\n\n", cli.RenderSparkline(values))

		switch {
		case months >= len(rows):
			fmt.Println(cli.PositiveStyle.Render(fmt.Sprintf("  Cash covers all %d forecast months.", len(rows))))
		case months == 0:
			fmt.Println(cli.NegativeStyle.Render("  Cash is exhausted in the first forecast month."))
		default:
			fmt.Printf("  Cash covers %d of %d forecast months.\n", months, len(rows))
		}
		return nil
	})
}
