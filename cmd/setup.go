package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/runcastdev/runcast/internal/config"
	"github.com/runcastdev/runcast/internal/forecast"
	"github.com/runcastdev/runcast/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagSetupDemo bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&flagSetupDemo, "demo", false, "Seed sample data without prompting")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	if flagSetupDemo {
		if err := config.Save(cfg); err != nil {
			return err
		}
		return seedDemo(cfg)
	}

	decayStr := strconv.FormatFloat(cfg.Forecast.DecayCoefficient, 'g', -1, 64)
	balanceStr := strconv.FormatFloat(cfg.Cash.StartingBalance, 'g', -1, 64)
	baseStr := cfg.Forecast.BaseDate
	wantDemo := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Forecast base date (YYYY-MM-DD, blank = today)").
				Value(&baseStr).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := time.Parse(config.DateFormat, s)
					return err
				}),
			huh.NewInput().
				Title("Decay coefficient λ").
				Description("Probability erosion per month of pipeline age.").
				Value(&decayStr).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
			huh.NewInput().
				Title("Starting cash balance").
				Value(&balanceStr).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v < 0 {
						return fmt.Errorf("enter a non-negative number")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Seed sample data?").
				Description("A small demo portfolio to explore the commands with.").
				Value(&wantDemo),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	cfg.Forecast.BaseDate = strings.TrimSpace(baseStr)
	cfg.Forecast.DecayCoefficient, _ = strconv.ParseFloat(strings.TrimSpace(decayStr), 64)
	cfg.Cash.StartingBalance, _ = strconv.ParseFloat(strings.TrimSpace(balanceStr), 64)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())

	if wantDemo {
		if err := seedDemo(cfg); err != nil {
			return err
		}
	}

	fmt.Println("  Run `runcast setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

// seedDemo fills an empty database with a small sample portfolio.
func seedDemo(cfg config.Config) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	existing, err := s.Projects()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("database already has %d projects; demo data is only seeded into an empty database", len(existing))
	}

	base, err := cfg.Forecast.Base()
	if err != nil {
		return err
	}

	day := func(offsetMonths, dayOfMonth int) time.Time {
		t := model.AddMonths(base, offsetMonths)
		return time.Date(t.Year(), t.Month(), dayOfMonth, 0, 0, 0, 0, time.UTC)
	}

	demoProjects := []struct {
		name     string
		delivery time.Time
		amount   float64
		closePct float64
		line     string
	}{
		{"chem plant spectrometer line", day(2, 15), 180, 70, "spectroscopy"},
		{"pharma dispensing cell", day(3, 10), 260, 55, "dispensing"},
		{"packaging line retrofit", day(5, 20), 320, 45, "automation"},
		{"pilot lab analyzer", day(7, 5), 90, 60, "spectroscopy"},
		{"warehouse conveyor upgrade", day(9, 25), 210, 35, "automation"},
	}
	for _, d := range demoProjects {
		p, err := model.NewProject(d.name, d.delivery, d.amount, d.closePct, d.line, model.DefaultPaymentRatios)
		if err != nil {
			return err
		}
		p.CorrectedRevenue = forecast.ExpectedRevenue(p, cfg.Forecast.DecayCoefficient, base)
		if err := s.AddProject(p); err != nil {
			return err
		}
	}

	yearStart := day(0, 1)
	yearEnd := day(11, model.MonthOf(model.AddMonths(base, 11)).Days())

	demoLabor := []struct {
		category, resource string
		monthly            float64
	}{
		{"research", "engineering team", 42},
		{"selling", "sales team", 18},
		{"management", "operations", 12},
	}
	for _, d := range demoLabor {
		r, err := model.NewLaborCostRecord(d.category, d.resource, d.monthly, yearStart, yearEnd)
		if err != nil {
			return err
		}
		if err := s.AddLaborCost(r); err != nil {
			return err
		}
	}

	demoAdmin := []struct {
		category, item string
		monthly        float64
		freq           model.PaymentFrequency
	}{
		{"rent", "office lease", 6, model.FrequencyQuarterly},
		{"utilities", "power and network", 1.5, model.FrequencyMonthly},
		{"insurance", "liability policy", 2, model.FrequencyYearly},
	}
	for _, d := range demoAdmin {
		r, err := model.NewAdminCostRecord(d.category, d.item, d.monthly, yearStart, yearEnd, d.freq)
		if err != nil {
			return err
		}
		if err := s.AddAdminCost(r); err != nil {
			return err
		}
	}

	grant, err := model.NewOccasionalEntry(model.EntryIncome, "r&d subsidy", 30, day(4, 15), "subsidy")
	if err != nil {
		return err
	}
	rig, err := model.NewOccasionalEntry(model.EntryExpense, "test rig purchase", 24, day(1, 20), "equipment")
	if err != nil {
		return err
	}
	for _, e := range []model.OccasionalEntry{grant, rig} {
		if err := s.AddOccasionalEntry(e); err != nil {
			return err
		}
	}

	fmt.Printf("  Seeded %d projects, %d labor schedules, %d admin schedules, 2 one-off entries.\n",
		len(demoProjects), len(demoLabor), len(demoAdmin))
	return nil
}
