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

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage administrative cost schedules",
	RunE:  runAdminList,
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List administrative cost records",
	RunE:  runAdminList,
}

var (
	flagAdminCategory string
	flagAdminItem     string
	flagAdminCost     float64
	flagAdminStart    string
	flagAdminEnd      string
	flagAdminFreq     string
)

var adminAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an administrative cost record",
	RunE:  runAdminAdd,
}

var adminSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update an administrative cost record",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminSet,
}

var adminDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an administrative cost record",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminDelete,
}

func init() {
	for _, c := range []*cobra.Command{adminAddCmd, adminSetCmd} {
		c.Flags().StringVar(&flagAdminCategory, "category", "", "Cost category (rent, utilities, travel, ...)")
		c.Flags().StringVar(&flagAdminItem, "item", "", "Expense label")
		c.Flags().Float64Var(&flagAdminCost, "cost", -1, "Monthly cost rate")
		c.Flags().StringVar(&flagAdminStart, "start", "", "Start date, YYYY-MM-DD")
		c.Flags().StringVar(&flagAdminEnd, "end", "", "End date (inclusive), YYYY-MM-DD")
		c.Flags().StringVar(&flagAdminFreq, "freq", "", "Payment frequency: monthly, quarterly, or yearly")
	}

	adminCmd.AddCommand(adminListCmd, adminAddCmd, adminSetCmd, adminDeleteCmd)
	rootCmd.AddCommand(adminCmd)
}

func runAdminList(_ *cobra.Command, _ []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		records, err := s.AdminCosts()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("\n  No administrative cost records.")
			return nil
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("ADMINISTRATIVE COSTS"))
		fmt.Println()

		rows := make([][]string, 0, len(records))
		var total float64
		for _, r := range records {
			total += r.MonthlyCost
			rows = append(rows, []string{
				cli.ShortID(r.ID),
				truncate(r.Category, 14),
				truncate(r.Item, 20),
				cli.FormatAmount(r.MonthlyCost),
				string(r.Frequency),
				cli.FormatDate(r.Start),
				cli.FormatDate(r.End),
			})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"", "", "Total", cli.FormatAmount(total), "", "", ""})

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"ID", "Category", "Item", "Monthly", "Freq", "Start", "End"},
			Rows:    rows,
		}))
		return nil
	})
}

func runAdminAdd(_ *cobra.Command, _ []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		start, end, err := parseInterval(flagAdminStart, flagAdminEnd)
		if err != nil {
			return err
		}
		freq := model.FrequencyMonthly
		if flagAdminFreq != "" {
			if freq, err = model.ParseFrequency(flagAdminFreq); err != nil {
				return err
			}
		}
		r, err := model.NewAdminCostRecord(flagAdminCategory, flagAdminItem, flagAdminCost, start, end, freq)
		if err != nil {
			return err
		}
		if err := s.AddAdminCost(r); err != nil {
			return err
		}
		fmt.Printf("  Added admin cost %s (%s)\n", r.Item, cli.ShortID(r.ID))
		return nil
	})
}

func runAdminSet(_ *cobra.Command, args []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		records, err := s.AdminCosts()
		if err != nil {
			return err
		}
		id, err := resolveID(args[0], len(records), func(i int) string { return records[i].ID })
		if err != nil {
			return err
		}

		var r model.AdminCostRecord
		for _, rec := range records {
			if rec.ID == id {
				r = rec
				break
			}
		}

		if flagAdminCategory != "" {
			r.Category = flagAdminCategory
		}
		if flagAdminItem != "" {
			r.Item = flagAdminItem
		}
		if flagAdminCost >= 0 {
			r.MonthlyCost = flagAdminCost
		}
		if flagAdminStart != "" {
			if r.Start, err = time.Parse(config.DateFormat, flagAdminStart); err != nil {
				return fmt.Errorf("invalid start date %q: %w", flagAdminStart, err)
			}
		}
		if flagAdminEnd != "" {
			if r.End, err = time.Parse(config.DateFormat, flagAdminEnd); err != nil {
				return fmt.Errorf("invalid end date %q: %w", flagAdminEnd, err)
			}
		}
		if flagAdminFreq != "" {
			if r.Frequency, err = model.ParseFrequency(flagAdminFreq); err != nil {
				return err
			}
		}
		if r.End.Before(r.Start) {
			return fmt.Errorf("end date %s before start date %s",
				cli.FormatDate(r.End), cli.FormatDate(r.Start))
		}

		if err := s.UpdateAdminCost(r); err != nil {
			return err
		}
		fmt.Printf("  Updated admin cost %s (%s)\n", r.Item, cli.ShortID(r.ID))
		return nil
	})
}

func runAdminDelete(_ *cobra.Command, args []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		records, err := s.AdminCosts()
		if err != nil {
			return err
		}
		id, err := resolveID(args[0], len(records), func(i int) string { return records[i].ID })
		if err != nil {
			return err
		}
		if err := s.DeleteAdminCost(id); err != nil {
			return err
		}
		fmt.Printf("  Deleted admin cost %s\n", cli.ShortID(id))
		return nil
	})
}
