package tui

import (
	"fmt"
	"strings"

	"github.com/runcastdev/runcast/internal/cli"
	"github.com/runcastdev/runcast/internal/tui/components"
	"github.com/runcastdev/runcast/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderProjectsTab(cw int) string {
	t := theme.Active

	if len(a.revs) == 0 {
		return components.ContentCard("", "No projects yet. Add one with `runcast projects add`.", cw)
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-26s %-10s %3s  %-7s %12s %12s",
		"Project", "Delivery", "Mo", "Decay", "Expected", "Corrected")))
	body.WriteString("\n")

	for _, r := range a.revs {
		name := r.Project.Name
		if len(name) > 26 {
			name = name[:25] + "…"
		}
		body.WriteString(fmt.Sprintf("%s %s %s  %s %s %s\n",
			valueStyle.Render(fmt.Sprintf("%-26s", name)),
			labelStyle.Render(cli.FormatDate(r.Project.DeliveryDate)),
			labelStyle.Render(fmt.Sprintf("%3d", r.MonthsOut)),
			labelStyle.Render(cli.FormatFactor(r.DecayFactor)),
			valueStyle.Render(fmt.Sprintf("%12s", cli.FormatAmount(r.ExpectedRevenue))),
			valueStyle.Render(fmt.Sprintf("%12s", cli.FormatAmount(r.Project.CorrectedRevenue))),
		))
	}

	body.WriteString("\n")
	for _, l := range a.lines {
		bar := int(l.ContributionPct / 100 * 30)
		if bar < 0 {
			bar = 0
		}
		body.WriteString(fmt.Sprintf("%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-14s", l.BusinessLine)),
			lipgloss.NewStyle().Foreground(t.Blue).Render(strings.Repeat("█", bar)),
			labelStyle.Render(cli.FormatPercent(l.ContributionPct)),
		))
	}

	return components.ContentCard("Pipeline", strings.TrimRight(body.String(), "\n"), cw)
}
