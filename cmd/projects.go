package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/runcastdev/runcast/internal/cli"
	"github.com/runcastdev/runcast/internal/config"
	"github.com/runcastdev/runcast/internal/forecast"
	"github.com/runcastdev/runcast/internal/model"
	"github.com/runcastdev/runcast/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage the pipeline of deals",
	RunE:  runProjectsList,
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE:  runProjectsList,
}

var (
	flagProjName   string
	flagProjDate   string
	flagProjAmount float64
	flagProjClose  float64
	flagProjLine   string
	flagProjRatios string
)

var projectsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project (interactive without flags)",
	RunE:  runProjectsAdd,
}

var (
	flagSetRevenue float64
	flagSetClose   float64
	flagSetAmount  float64
	flagSetDate    string
	flagSetName    string
	flagSetLine    string
	flagSetRatios  string
)

var projectsSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update a project's fields or override its corrected revenue",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsSet,
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsDelete,
}

func init() {
	projectsAddCmd.Flags().StringVar(&flagProjName, "name", "", "Project name")
	projectsAddCmd.Flags().StringVar(&flagProjDate, "date", "", "Delivery date, YYYY-MM-DD")
	projectsAddCmd.Flags().Float64Var(&flagProjAmount, "amount", 0, "Contract amount")
	projectsAddCmd.Flags().Float64Var(&flagProjClose, "close", 50, "Close rate estimate, 0-100")
	projectsAddCmd.Flags().StringVar(&flagProjLine, "line", "", "Business line")
	projectsAddCmd.Flags().StringVar(&flagProjRatios, "ratios", "", "Payment ratios first,second,final (default 50,40,10)")

	projectsSetCmd.Flags().Float64Var(&flagSetRevenue, "revenue", -1, "Override corrected revenue")
	projectsSetCmd.Flags().Float64Var(&flagSetClose, "close", -1, "Close rate estimate, 0-100")
	projectsSetCmd.Flags().Float64Var(&flagSetAmount, "amount", -1, "Contract amount")
	projectsSetCmd.Flags().StringVar(&flagSetDate, "date", "", "Delivery date, YYYY-MM-DD")
	projectsSetCmd.Flags().StringVar(&flagSetName, "name", "", "Project name")
	projectsSetCmd.Flags().StringVar(&flagSetLine, "line", "", "Business line")
	projectsSetCmd.Flags().StringVar(&flagSetRatios, "ratios", "", "Payment ratios first,second,final")

	projectsCmd.AddCommand(projectsListCmd, projectsAddCmd, projectsSetCmd, projectsDeleteCmd)
	rootCmd.AddCommand(projectsCmd)
}

func runProjectsList(_ *cobra.Command, _ []string) error {
	return withSnapshot(func(snap model.Snapshot, cfg config.Config) error {
		if len(snap.Projects) == 0 {
			fmt.Println("\n  No projects yet. Add one with `runcast projects add`.")
			return nil
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("PROJECTS"))
		fmt.Println()

		rows := make([][]string, 0, len(snap.Projects))
		for _, p := range snap.Projects {
			rows = append(rows, []string{
				cli.ShortID(p.ID),
				truncate(p.Name, 24),
				cli.FormatDate(p.DeliveryDate),
				truncate(p.BusinessLine, 14),
				cli.FormatAmount(p.ContractAmount),
				cli.FormatPercent(p.CloseRatePct),
				cli.FormatAmount(p.CorrectedRevenue),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"ID", "Project", "Delivery", "Line", "Contract", "Close", "Corrected"},
			Rows:    rows,
		}))
		return nil
	})
}

func runProjectsAdd(_ *cobra.Command, _ []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		if flagProjName == "" {
			if err := projectForm(); err != nil {
				return err
			}
		}

		delivery, err := time.Parse(config.DateFormat, flagProjDate)
		if err != nil {
			return fmt.Errorf("invalid delivery date %q: %w", flagProjDate, err)
		}
		ratios := model.DefaultPaymentRatios
		if flagProjRatios != "" {
			if ratios, err = parseRatios(flagProjRatios); err != nil {
				return err
			}
		}

		p, err := model.NewProject(flagProjName, delivery, flagProjAmount, flagProjClose, flagProjLine, ratios)
		if err != nil {
			return err
		}

		// Seed corrected revenue from the model. Manual overrides via
		// `projects set --revenue` stick; the formula never runs again.
		base, err := cfg.Forecast.Base()
		if err != nil {
			return err
		}
		p.CorrectedRevenue = forecast.ExpectedRevenue(p, cfg.Forecast.DecayCoefficient, base)

		if err := s.AddProject(p); err != nil {
			return err
		}

		fmt.Printf("  Added project %s (%s)\n", p.Name, cli.ShortID(p.ID))
		fmt.Printf("  Expected revenue: %s (close %s, decay %s)\n",
			cli.FormatAmount(p.CorrectedRevenue),
			cli.FormatPercent(p.CloseRatePct),
			cli.FormatFactor(forecast.DecayFactor(cfg.Forecast.DecayCoefficient, model.MonthsBetween(base, p.DeliveryDate))),
		)
		return nil
	})
}

// projectForm collects the add flags interactively.
func projectForm() error {
	var amountStr, closeStr string
	closeStr = "50"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&flagProjName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Delivery date (YYYY-MM-DD)").
				Value(&flagProjDate).
				Validate(func(s string) error {
					_, err := time.Parse(config.DateFormat, s)
					return err
				}),
			huh.NewInput().
				Title("Contract amount").
				Value(&amountStr).
				Validate(validFloat),
			huh.NewInput().
				Title("Close rate % (0-100)").
				Value(&closeStr).
				Validate(validFloat),
			huh.NewInput().
				Title("Business line").
				Value(&flagProjLine),
			huh.NewInput().
				Title("Payment ratios first,second,final").
				Placeholder("50,40,10").
				Value(&flagProjRatios),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	flagProjAmount, _ = strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	flagProjClose, _ = strconv.ParseFloat(strings.TrimSpace(closeStr), 64)
	return nil
}

func validFloat(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func runProjectsSet(_ *cobra.Command, args []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		projects, err := s.Projects()
		if err != nil {
			return err
		}
		id, err := resolveID(args[0], len(projects), func(i int) string { return projects[i].ID })
		if err != nil {
			return err
		}
		p, err := s.Project(id)
		if err != nil {
			return err
		}

		if flagSetName != "" {
			p.Name = flagSetName
		}
		if flagSetLine != "" {
			p.BusinessLine = flagSetLine
		}
		if flagSetDate != "" {
			d, err := time.Parse(config.DateFormat, flagSetDate)
			if err != nil {
				return fmt.Errorf("invalid delivery date %q: %w", flagSetDate, err)
			}
			p.DeliveryDate = d
		}
		if flagSetAmount >= 0 {
			p.ContractAmount = flagSetAmount
		}
		if flagSetClose >= 0 {
			if flagSetClose > 100 {
				return fmt.Errorf("close rate %.1f out of range 0-100", flagSetClose)
			}
			p.CloseRatePct = flagSetClose
		}
		if flagSetRatios != "" {
			if p.Ratios, err = parseRatios(flagSetRatios); err != nil {
				return err
			}
		}
		if flagSetRevenue >= 0 {
			p.CorrectedRevenue = flagSetRevenue
		}

		if err := s.UpdateProject(p); err != nil {
			return err
		}
		fmt.Printf("  Updated project %s (%s)\n", p.Name, cli.ShortID(p.ID))
		return nil
	})
}

func runProjectsDelete(_ *cobra.Command, args []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		projects, err := s.Projects()
		if err != nil {
			return err
		}
		id, err := resolveID(args[0], len(projects), func(i int) string { return projects[i].ID })
		if err != nil {
			return err
		}
		if err := s.DeleteProject(id); err != nil {
			return err
		}
		fmt.Printf("  Deleted project %s\n", cli.ShortID(id))
		return nil
	})
}

// parseRatios parses "50,40,10" into payment ratios.
func parseRatios(s string) (model.PaymentRatios, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return model.PaymentRatios{}, fmt.Errorf("ratios %q: want three comma-separated percentages", s)
	}
	vals := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return model.PaymentRatios{}, fmt.Errorf("ratios %q: %w", s, err)
		}
		if v < 0 || v > 100 {
			return model.PaymentRatios{}, fmt.Errorf("ratio %.1f out of range 0-100", v)
		}
		vals[i] = v
	}
	return model.PaymentRatios{First: vals[0], Second: vals[1], Final: vals[2]}, nil
}
