package tui

import (
	"fmt"
	"strings"

	"github.com/runcastdev/runcast/internal/cli"
	"github.com/runcastdev/runcast/internal/forecast"
	"github.com/runcastdev/runcast/internal/tui/components"
	"github.com/runcastdev/runcast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const maxEventsShown = 12

func (a App) renderCashflowTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	events, _ := forecast.CashFlowEvents(a.snap.Projects)
	monthly := forecast.MonthlyCashFlow(events)

	if len(monthly) > 0 {
		vals := make([]float64, len(monthly))
		labels := make([]string, len(monthly))
		for i, m := range monthly {
			vals[i] = m.Amount
			labels[i] = m.Month.Key()[2:]
		}
		b.WriteString(components.ContentCard(
			"Expected payment inflow",
			components.BarChart(vals, labels, t.Green, components.CardInnerWidth(cw), 8),
			cw,
		))
		b.WriteString("\n")
	}

	if len(a.runway) > 0 {
		balances := make([]float64, len(a.runway))
		for i, r := range a.runway {
			balances[i] = r.Balance
		}
		last := a.runway[len(a.runway)-1]
		body := fmt.Sprintf("%s\nstart %s  end %s",
			components.Sparkline(balances, t.Yellow),
			cli.FormatAmount(a.cfg.Cash.StartingBalance),
			cli.FormatAmount(last.Balance),
		)
		b.WriteString(components.ContentCard("Cash balance", body, cw))
		b.WriteString("\n")
	}

	if len(events) > 0 {
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

		shown := events
		if len(shown) > maxEventsShown {
			shown = shown[:maxEventsShown]
		}
		var body strings.Builder
		for _, e := range shown {
			name := e.ProjectName
			if len(name) > 24 {
				name = name[:23] + "…"
			}
			body.WriteString(fmt.Sprintf("%s  %-24s %-8s %s\n",
				labelStyle.Render(cli.FormatDate(e.Date)),
				valueStyle.Render(name),
				labelStyle.Render(strings.TrimSuffix(string(e.Kind), "_payment")),
				valueStyle.Render(fmt.Sprintf("%12s", cli.FormatAmount(e.Amount))),
			))
		}
		if len(events) > maxEventsShown {
			body.WriteString(labelStyle.Render(fmt.Sprintf("… %d more", len(events)-maxEventsShown)))
		}
		b.WriteString(components.ContentCard("Upcoming payments", strings.TrimRight(body.String(), "\n"), cw))
	}

	if len(events) == 0 {
		b.WriteString(components.ContentCard("", "No projects yet. Add one with `runcast projects add`.", cw))
	}

	return b.String()
}
