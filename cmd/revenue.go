package cmd

import (
	"fmt"

	"github.com/runcastdev/runcast/internal/cli"
	"github.com/runcastdev/runcast/internal/config"
	"github.com/runcastdev/runcast/internal/forecast"
	"github.com/runcastdev/runcast/internal/model"

	"github.com/spf13/cobra"
)

var revenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Risk-adjusted revenue forecast",
	RunE:  runRevenue,
}

func init() {
	rootCmd.AddCommand(revenueCmd)
}

func runRevenue(_ *cobra.Command, _ []string) error {
	return withSnapshot(func(snap model.Snapshot, cfg config.Config) error {
		if len(snap.Projects) == 0 {
			fmt.Println("\n  No projects yet. Add one with `runcast projects add`.")
			return nil
		}

		base, err := cfg.Forecast.Base()
		if err != nil {
			return err
		}
		revs := forecast.ProjectRevenues(snap.Projects, cfg.Forecast.DecayCoefficient, base)
		quarters, lines, totals := forecast.Summarize(revs)

		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("REVENUE FORECAST  base %s", cli.FormatDate(base))))
		fmt.Println()

		rows := make([][]string, 0, len(revs)+2)
		for _, r := range revs {
			rows = append(rows, []string{
				truncate(r.Project.Name, 24),
				cli.FormatDate(r.Project.DeliveryDate),
				fmt.Sprintf("%d", r.MonthsOut),
				cli.FormatFactor(r.DecayFactor),
				cli.FormatAmount(r.ExpectedRevenue),
				cli.FormatAmount(r.Project.CorrectedRevenue),
			})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{
			"Total", "", "", "",
			cli.FormatAmount(totals.ExpectedRevenue),
			cli.FormatAmount(totals.CorrectedRevenue),
		})
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Project", "Delivery", "Mo", "Decay", "Expected", "Corrected"},
			Rows:    rows,
		}))
		fmt.Println()

		qRows := make([][]string, 0, len(quarters))
		for _, q := range quarters {
			qRows = append(qRows, []string{
				q.Quarter,
				fmt.Sprintf("%d", q.Projects),
				cli.FormatAmount(q.Revenue),
				cli.FormatFactor(q.AvgDecay),
				cli.FormatPercent(q.CumulativePct),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By delivery quarter",
			Headers: []string{"Quarter", "Deals", "Revenue", "Avg decay", "Cumulative"},
			Rows:    qRows,
		}))
		fmt.Println()

		lRows := make([][]string, 0, len(lines))
		for _, l := range lines {
			lRows = append(lRows, []string{
				truncate(l.BusinessLine, 18),
				fmt.Sprintf("%d", l.Projects),
				cli.FormatAmount(l.Revenue),
				cli.FormatPercent(l.ContributionPct),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By business line",
			Headers: []string{"Line", "Deals", "Revenue", "Share"},
			Rows:    lRows,
		}))
		fmt.Println()

		fmt.Printf("  %d deals, contract total %s, conversion %s, avg decay %s\n",
			totals.Projects,
			cli.FormatAmount(totals.ContractTotal),
			cli.FormatPercent(totals.ConversionPct),
			cli.FormatFactor(totals.AvgDecay),
		)
		return nil
	})
}
