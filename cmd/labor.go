package cmd

import (
	"fmt"
	"time"

	"github.com/runcastdev/runcast/internal/cli"
	"github.com/runcastdev/runcast/internal/config"
	"github.com/runcastdev/runcast/internal/model"
	"github.com/runcastdev/runcast/internal/store"

	"github.com/spf13/cobra"
)

var laborCmd = &cobra.Command{
	Use:   "labor",
	Short: "Manage labor cost schedules",
	RunE:  runLaborList,
}

var laborListCmd = &cobra.Command{
	Use:   "list",
	Short: "List labor cost records",
	RunE:  runLaborList,
}

var (
	flagLaborCategory string
	flagLaborResource string
	flagLaborCost     float64
	flagLaborStart    string
	flagLaborEnd      string
)

var laborAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a labor cost record",
	RunE:  runLaborAdd,
}

var laborSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update a labor cost record",
	Args:  cobra.ExactArgs(1),
	RunE:  runLaborSet,
}

var laborDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a labor cost record",
	Args:  cobra.ExactArgs(1),
	RunE:  runLaborDelete,
}

func init() {
	for _, c := range []*cobra.Command{laborAddCmd, laborSetCmd} {
		c.Flags().StringVar(&flagLaborCategory, "category", "", "Cost category (selling, manufacturing, research, management)")
		c.Flags().StringVar(&flagLaborResource, "resource", "", "Person or department label")
		c.Flags().Float64Var(&flagLaborCost, "cost", -1, "Monthly cost rate")
		c.Flags().StringVar(&flagLaborStart, "start", "", "Start date, YYYY-MM-DD")
		c.Flags().StringVar(&flagLaborEnd, "end", "", "End date (inclusive), YYYY-MM-DD")
	}

	laborCmd.AddCommand(laborListCmd, laborAddCmd, laborSetCmd, laborDeleteCmd)
	rootCmd.AddCommand(laborCmd)
}

func runLaborList(_ *cobra.Command, _ []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		records, err := s.LaborCosts()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("\n  No labor cost records.")
			return nil
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("LABOR COSTS"))
		fmt.Println()

		rows := make([][]string, 0, len(records))
		var total float64
		for _, r := range records {
			total += r.MonthlyCost
			rows = append(rows, []string{
				cli.ShortID(r.ID),
				truncate(r.Category, 14),
				truncate(r.Resource, 20),
				cli.FormatAmount(r.MonthlyCost),
				cli.FormatDate(r.Start),
				cli.FormatDate(r.End),
			})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"", "", "Total", cli.FormatAmount(total), "", ""})

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"ID", "Category", "Resource", "Monthly", "Start", "End"},
			Rows:    rows,
		}))
		return nil
	})
}

func runLaborAdd(_ *cobra.Command, _ []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		start, end, err := parseInterval(flagLaborStart, flagLaborEnd)
		if err != nil {
			return err
		}
		r, err := model.NewLaborCostRecord(flagLaborCategory, flagLaborResource, flagLaborCost, start, end)
		if err != nil {
			return err
		}
		if err := s.AddLaborCost(r); err != nil {
			return err
		}
		fmt.Printf("  Added labor cost %s (%s)\n", r.Resource, cli.ShortID(r.ID))
		return nil
	})
}

func runLaborSet(_ *cobra.Command, args []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		records, err := s.LaborCosts()
		if err != nil {
			return err
		}
		id, err := resolveID(args[0], len(records), func(i int) string { return records[i].ID })
		if err != nil {
			return err
		}

		var r model.LaborCostRecord
		for _, rec := range records {
			if rec.ID == id {
				r = rec
				break
			}
		}

		if flagLaborCategory != "" {
			r.Category = flagLaborCategory
		}
		if flagLaborResource != "" {
			r.Resource = flagLaborResource
		}
		if flagLaborCost >= 0 {
			r.MonthlyCost = flagLaborCost
		}
		if flagLaborStart != "" {
			if r.Start, err = time.Parse(config.DateFormat, flagLaborStart); err != nil {
				return fmt.Errorf("invalid start date %q: %w", flagLaborStart, err)
			}
		}
		if flagLaborEnd != "" {
			if r.End, err = time.Parse(config.DateFormat, flagLaborEnd); err != nil {
				return fmt.Errorf("invalid end date %q: %w", flagLaborEnd, err)
			}
		}
		if r.End.Before(r.Start) {
			return fmt.Errorf("end date %s before start date %s",
				cli.FormatDate(r.End), cli.FormatDate(r.Start))
		}

		if err := s.UpdateLaborCost(r); err != nil {
			return err
		}
		fmt.Printf("  Updated labor cost %s (%s)\n", r.Resource, cli.ShortID(r.ID))
		return nil
	})
}

func runLaborDelete(_ *cobra.Command, args []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		records, err := s.LaborCosts()
		if err != nil {
			return err
		}
		id, err := resolveID(args[0], len(records), func(i int) string { return records[i].ID })
		if err != nil {
			return err
		}
		if err := s.DeleteLaborCost(id); err != nil {
			return err
		}
		fmt.Printf("  Deleted labor cost %s\n", cli.ShortID(id))
		return nil
	})
}

// parseInterval parses a required start/end date pair.
func parseInterval(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(config.DateFormat, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startStr, err)
	}
	end, err := time.Parse(config.DateFormat, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endStr, err)
	}
	return start, end, nil
}
