// Package tui implements the interactive runcast dashboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/runcastdev/runcast/internal/config"
	"github.com/runcastdev/runcast/internal/forecast"
	"github.com/runcastdev/runcast/internal/model"
	"github.com/runcastdev/runcast/internal/store"
	"github.com/runcastdev/runcast/internal/tui/components"
	"github.com/runcastdev/runcast/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
)

// dataLoadedMsg carries the snapshot read from the store.
type dataLoadedMsg struct {
	snap model.Snapshot
	err  error
}

// App is the bubbletea model for the dashboard.
type App struct {
	cfg    config.Config
	dbPath string

	// UI state
	width     int
	height    int
	activeTab int

	loaded  bool
	loadErr error

	// Raw inputs
	snap model.Snapshot

	// Derived forecast artifacts, recomputed on load and settings change
	ledger       []model.LedgerRow
	runway       []model.RunwayRow
	runwayMonths int
	revs         []model.ProjectRevenue
	quarters     []forecast.QuarterSummary
	lines        []forecast.LineSummary
	totals       forecast.Totals
	warnings     []string

	settings settingsState
}

// NewApp builds the dashboard model. Data loads asynchronously in Init.
func NewApp(cfg config.Config, dbPath string) App {
	return App{
		cfg:      cfg,
		dbPath:   dbPath,
		settings: newSettingsState(cfg),
	}
}

func (a App) Init() tea.Cmd {
	dbPath := a.dbPath
	return func() tea.Msg {
		s, err := store.Open(dbPath)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		defer func() { _ = s.Close() }()

		snap, err := s.Snapshot()
		return dataLoadedMsg{snap: snap, err: err}
	}
}

// recompute rebuilds every derived artifact from the snapshot and config.
func (a *App) recompute() {
	base, err := a.cfg.Forecast.Base()
	if err != nil {
		a.loadErr = err
		return
	}

	table := forecast.RatioTable{
		Ratios:  a.cfg.Forecast.MaterialRatios,
		Default: a.cfg.Forecast.DefaultMaterialRatio,
	}

	a.ledger = forecast.Ledger(a.snap, table)
	a.runway, a.runwayMonths = forecast.Runway(a.ledger, a.cfg.Cash.StartingBalance)
	a.revs = forecast.ProjectRevenues(a.snap.Projects, a.cfg.Forecast.DecayCoefficient, base)
	a.quarters, a.lines, a.totals = forecast.Summarize(a.revs)
	_, a.warnings = forecast.CashFlowEvents(a.snap.Projects)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case dataLoadedMsg:
		if msg.err != nil {
			a.loadErr = msg.err
			return a, nil
		}
		a.snap = msg.snap
		a.loaded = true
		a.recompute()
		return a, nil

	case tea.KeyMsg:
		// The settings tab owns most keys while one of its inputs has focus.
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettings(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "tab", "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab", "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		}

		if len(msg.String()) == 1 {
			if idx := components.TabIdxByKey(rune(msg.String()[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		if a.activeTab == tabSettings {
			return a.updateSettings(msg)
		}
		return a, nil
	}

	return a, nil
}

// Tab indices matching components.Tabs.
const (
	tabOverview = iota
	tabCashflow
	tabProjects
	tabSettings
)

func (a App) View() string {
	t := theme.Active

	if a.width > 0 && a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n", a.width, minTerminalWidth)
	}

	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		return "\n" + errStyle.Render(fmt.Sprintf("  Error: %s", a.loadErr)) + "\n\n  Press q to quit.\n"
	}
	if !a.loaded {
		return "\n  Loading forecast data...\n"
	}

	cw := a.width - 2
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	if cw < 10 {
		cw = maxContentWidth
	}

	var body string
	switch a.activeTab {
	case tabOverview:
		body = a.renderOverviewTab(cw)
	case tabCashflow:
		body = a.renderCashflowTab(cw)
	case tabProjects:
		body = a.renderProjectsTab(cw)
	case tabSettings:
		body = a.renderSettingsTab(cw)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(components.StatusBar(a.width, a.statusHint()))
	return b.String()
}

func (a App) statusHint() string {
	if a.activeTab == tabSettings {
		if a.settings.editing {
			return "[enter]save  [esc]cancel"
		}
		return "[e]dit  [t]heme"
	}
	if len(a.warnings) > 0 {
		return fmt.Sprintf("%d ratio warning(s)", len(a.warnings))
	}
	return ""
}
