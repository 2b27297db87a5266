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

var occasionalCmd = &cobra.Command{
	Use:     "occasional",
	Aliases: []string{"occ"},
	Short:   "Manage one-off income and expense entries",
	RunE:    runOccasionalList,
}

var occasionalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one-off entries",
	RunE:  runOccasionalList,
}

var (
	flagEntryKind   string
	flagEntryLabel  string
	flagEntryAmount float64
	flagEntryDate   string
	flagEntryTag    string
)

var occasionalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a one-off entry",
	RunE:  runOccasionalAdd,
}

var occasionalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a one-off entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runOccasionalDelete,
}

func init() {
	occasionalAddCmd.Flags().StringVar(&flagEntryKind, "kind", "expense", "Entry kind: income or expense")
	occasionalAddCmd.Flags().StringVar(&flagEntryLabel, "label", "", "Entry label")
	occasionalAddCmd.Flags().Float64Var(&flagEntryAmount, "amount", 0, "Amount")
	occasionalAddCmd.Flags().StringVar(&flagEntryDate, "date", "", "Entry date, YYYY-MM-DD")
	occasionalAddCmd.Flags().StringVar(&flagEntryTag, "tag", "", "Free-text type tag")

	occasionalCmd.AddCommand(occasionalListCmd, occasionalAddCmd, occasionalDeleteCmd)
	rootCmd.AddCommand(occasionalCmd)
}

func runOccasionalList(_ *cobra.Command, _ []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		entries, err := s.OccasionalEntries()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("\n  No one-off entries.")
			return nil
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("ONE-OFF ENTRIES"))
		fmt.Println()

		rows := make([][]string, 0, len(entries))
		var income, expense float64
		for _, e := range entries {
			if e.Kind == model.EntryIncome {
				income += e.Amount
			} else {
				expense += e.Amount
			}
			rows = append(rows, []string{
				cli.ShortID(e.ID),
				string(e.Kind),
				truncate(e.Label, 22),
				cli.FormatAmount(e.Amount),
				cli.FormatDate(e.Date),
				truncate(e.Tag, 12),
			})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"", "", "Income", cli.FormatAmount(income), "", ""})
		rows = append(rows, []string{"", "", "Expense", cli.FormatAmount(expense), "", ""})

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"ID", "Kind", "Label", "Amount", "Date", "Tag"},
			Rows:    rows,
		}))
		return nil
	})
}

func runOccasionalAdd(_ *cobra.Command, _ []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		date, err := time.Parse(config.DateFormat, flagEntryDate)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", flagEntryDate, err)
		}
		e, err := model.NewOccasionalEntry(model.EntryKind(flagEntryKind), flagEntryLabel, flagEntryAmount, date, flagEntryTag)
		if err != nil {
			return err
		}
		if err := s.AddOccasionalEntry(e); err != nil {
			return err
		}
		fmt.Printf("  Added %s entry %s (%s)\n", e.Kind, e.Label, cli.ShortID(e.ID))
		return nil
	})
}

func runOccasionalDelete(_ *cobra.Command, args []string) error {
	return withStore(func(s *store.Store, cfg config.Config) error {
		entries, err := s.OccasionalEntries()
		if err != nil {
			return err
		}
		id, err := resolveID(args[0], len(entries), func(i int) string { return entries[i].ID })
		if err != nil {
			return err
		}
		if err := s.DeleteOccasionalEntry(id); err != nil {
			return err
		}
		fmt.Printf("  Deleted entry %s\n", cli.ShortID(id))
		return nil
	})
}
