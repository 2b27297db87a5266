package tui

import (
	"fmt"
	"strings"

	"github.com/runcastdev/runcast/internal/cli"
	"github.com/runcastdev/runcast/internal/tui/components"
	"github.com/runcastdev/runcast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	runwayNote := fmt.Sprintf("of %d forecast months", len(a.runway))
	runwayValue := fmt.Sprintf("%d mo", a.runwayMonths)
	if a.runwayMonths >= len(a.runway) && len(a.runway) > 0 {
		runwayValue = fmt.Sprintf("%d+ mo", a.runwayMonths)
		runwayNote = "covers the whole horizon"
	}

	metrics := []components.Metric{
		{Label: "Pipeline", Value: fmt.Sprintf("%d deals", a.totals.Projects),
			Note: "contract " + cli.FormatAmount(a.totals.ContractTotal)},
		{Label: "Corrected revenue", Value: cli.FormatAmount(a.totals.CorrectedRevenue),
			Note: "conversion " + cli.FormatPercent(a.totals.ConversionPct)},
		{Label: "Avg decay", Value: cli.FormatFactor(a.totals.AvgDecay),
			Note: fmt.Sprintf("λ = %v", a.cfg.Forecast.DecayCoefficient)},
		{Label: "Runway", Value: runwayValue, Note: runwayNote},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	if len(a.ledger) > 0 {
		vals := make([]float64, len(a.ledger))
		labels := make([]string, len(a.ledger))
		for i, row := range a.ledger {
			vals[i] = row.TotalRevenue
			labels[i] = row.Month.Key()[2:] // "YY-MM"
		}
		b.WriteString(components.ContentCard(
			"Monthly revenue",
			components.BarChart(vals, labels, t.Blue, components.CardInnerWidth(cw), 8),
			cw,
		))
		b.WriteString("\n")
	}

	if len(a.quarters) > 0 {
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

		var body strings.Builder
		for _, q := range a.quarters {
			body.WriteString(fmt.Sprintf("%s  %s  %s\n",
				labelStyle.Render(q.Quarter),
				valueStyle.Render(fmt.Sprintf("%12s", cli.FormatAmount(q.Revenue))),
				labelStyle.Render(fmt.Sprintf("%d deals, cumulative %s", q.Projects, cli.FormatPercent(q.CumulativePct))),
			))
		}
		b.WriteString(components.ContentCard("Revenue by quarter", strings.TrimRight(body.String(), "\n"), cw))
		b.WriteString("\n")
	}

	if len(a.warnings) > 0 {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		var body strings.Builder
		for _, w := range a.warnings {
			body.WriteString(warnStyle.Render(w))
			body.WriteString("\n")
		}
		b.WriteString(components.ContentCard("Data quality", strings.TrimRight(body.String(), "\n"), cw))
	}

	return b.String()
}
