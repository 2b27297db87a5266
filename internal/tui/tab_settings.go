package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/runcastdev/runcast/internal/cli"
	"github.com/runcastdev/runcast/internal/config"
	"github.com/runcastdev/runcast/internal/tui/components"
	"github.com/runcastdev/runcast/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settingsState holds the editable forecast parameters.
type settingsState struct {
	editing bool
	focus   int // index into inputs
	inputs  []textinput.Model
	status  string
}

// Input indices.
const (
	inputBalance = iota
	inputDecay
	inputBase
	numInputs
)

func newSettingsState(cfg config.Config) settingsState {
	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 32
		ti.Width = 24
		return ti
	}

	ss := settingsState{inputs: make([]textinput.Model, numInputs)}
	ss.inputs[inputBalance] = mk("starting balance")
	ss.inputs[inputDecay] = mk("decay coefficient")
	ss.inputs[inputBase] = mk("YYYY-MM-DD or blank")
	ss.load(cfg)
	return ss
}

// load resets the input values from config.
func (ss *settingsState) load(cfg config.Config) {
	ss.inputs[inputBalance].SetValue(strconv.FormatFloat(cfg.Cash.StartingBalance, 'g', -1, 64))
	ss.inputs[inputDecay].SetValue(strconv.FormatFloat(cfg.Forecast.DecayCoefficient, 'g', -1, 64))
	ss.inputs[inputBase].SetValue(cfg.Forecast.BaseDate)
}

func (a App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ss := &a.settings

	if !ss.editing {
		switch msg.String() {
		case "e", "enter":
			ss.editing = true
			ss.focus = 0
			ss.status = ""
			return a, ss.setFocus()
		case "t":
			a.cycleTheme()
			return a, nil
		}
		return a, nil
	}

	switch msg.String() {
	case "esc":
		ss.editing = false
		ss.load(a.cfg)
		ss.blurAll()
		return a, nil

	case "tab", "down":
		ss.focus = (ss.focus + 1) % numInputs
		return a, ss.setFocus()

	case "shift+tab", "up":
		ss.focus = (ss.focus - 1 + numInputs) % numInputs
		return a, ss.setFocus()

	case "enter":
		if err := a.applySettings(); err != nil {
			ss.status = err.Error()
			return a, nil
		}
		ss.editing = false
		ss.blurAll()
		ss.status = "saved"
		return a, nil
	}

	var cmd tea.Cmd
	ss.inputs[ss.focus], cmd = ss.inputs[ss.focus].Update(msg)
	return a, cmd
}

func (ss *settingsState) setFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range ss.inputs {
		if i == ss.focus {
			cmd = ss.inputs[i].Focus()
		} else {
			ss.inputs[i].Blur()
		}
	}
	return cmd
}

func (ss *settingsState) blurAll() {
	for i := range ss.inputs {
		ss.inputs[i].Blur()
	}
}

// applySettings validates the inputs, saves the config, and recomputes the
// forecast.
func (a *App) applySettings() error {
	ss := &a.settings

	balance, err := strconv.ParseFloat(strings.TrimSpace(ss.inputs[inputBalance].Value()), 64)
	if err != nil || balance < 0 {
		return fmt.Errorf("balance must be a non-negative number")
	}
	decay, err := strconv.ParseFloat(strings.TrimSpace(ss.inputs[inputDecay].Value()), 64)
	if err != nil || decay <= 0 {
		return fmt.Errorf("decay coefficient must be a positive number")
	}

	cfg := a.cfg
	cfg.Cash.StartingBalance = balance
	cfg.Forecast.DecayCoefficient = decay
	cfg.Forecast.BaseDate = strings.TrimSpace(ss.inputs[inputBase].Value())
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	a.cfg = cfg
	a.recompute()
	return nil
}

// cycleTheme advances to the next theme and persists the choice.
func (a *App) cycleTheme() {
	for i, t := range theme.All {
		if t.Name == theme.Active.Name {
			next := theme.All[(i+1)%len(theme.All)]
			theme.SetActive(next.Name)
			a.cfg.UI.Theme = next.Name
			a.settings.status = "theme: " + next.Name
			if err := config.Save(a.cfg); err != nil {
				a.settings.status = err.Error()
			}
			return
		}
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	ss := a.settings

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	statusStyle := lipgloss.NewStyle().Foreground(t.Green)

	labels := [numInputs]string{"Starting balance", "Decay coefficient λ", "Base date"}

	var body strings.Builder
	for i, in := range ss.inputs {
		marker := "  "
		if ss.editing && i == ss.focus {
			marker = lipgloss.NewStyle().Foreground(t.Accent).Render("> ")
		}
		body.WriteString(fmt.Sprintf("%s%s\n%s  %s\n\n",
			marker, labelStyle.Render(labels[i]), " ", in.View()))
	}

	body.WriteString(labelStyle.Render("Theme: "))
	body.WriteString(valueStyle.Render(theme.Active.Name))
	body.WriteString("\n\n")

	body.WriteString(labelStyle.Render("Material ratios: "))
	body.WriteString(valueStyle.Render(fmt.Sprintf("default %.2f, %d business lines",
		a.cfg.Forecast.DefaultMaterialRatio, len(a.cfg.Forecast.MaterialRatios))))
	body.WriteString("\n")
	body.WriteString(labelStyle.Render("Config file: "))
	body.WriteString(valueStyle.Render(config.ConfigPath()))

	if ss.status != "" {
		body.WriteString("\n\n")
		body.WriteString(statusStyle.Render(ss.status))
	}

	card := components.ContentCard("Settings", body.String(), cw)

	note := labelStyle.Render(fmt.Sprintf("  Corrected revenue total: %s across %d deals",
		cli.FormatAmount(a.totals.CorrectedRevenue), a.totals.Projects))
	return card + "\n" + note
}
