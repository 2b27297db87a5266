package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/runcastdev/runcast/internal/config"
	"github.com/runcastdev/runcast/internal/forecast"
	"github.com/runcastdev/runcast/internal/model"
	"github.com/runcastdev/runcast/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDBPath   string
	flagBaseDate string
	flagBalance  float64
)

var rootCmd = &cobra.Command{
	Use:   "runcast",
	Short: "Revenue forecasting and cash runway CLI",
	Long:  "Forecast pipeline revenue, expand cost schedules, and project your cash runway.",
	RunE:  runBudget,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Database path (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagBaseDate, "base", "", "Forecast base date, YYYY-MM-DD (default: config or today)")
	rootCmd.PersistentFlags().Float64Var(&flagBalance, "balance", -1, "Starting cash balance (default: config)")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagBaseDate != "" {
		cfg.Forecast.BaseDate = flagBaseDate
	}
	if flagBalance >= 0 {
		cfg.Cash.StartingBalance = flagBalance
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openStore opens the database at the configured or flag-overridden path.
func openStore() (*store.Store, error) {
	path := flagDBPath
	if path == "" {
		path = config.DatabasePath()
	}
	return store.Open(path)
}

// withSnapshot runs fn with a fresh snapshot, handling open/close.
func withSnapshot(fn func(model.Snapshot, config.Config) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	snap, err := s.Snapshot()
	if err != nil {
		return err
	}
	return fn(snap, cfg)
}

// withStore runs fn against the opened store and loaded config.
func withStore(fn func(*store.Store, config.Config) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return fn(s, cfg)
}

// ratioTable builds the engine's ratio lookup from config.
func ratioTable(cfg config.Config) forecast.RatioTable {
	return forecast.RatioTable{
		Ratios:  cfg.Forecast.MaterialRatios,
		Default: cfg.Forecast.DefaultMaterialRatio,
	}
}

// resolveID matches a full id or unique prefix against the given records.
// idOf extracts the id of record i.
func resolveID(arg string, n int, idOf func(int) string) (string, error) {
	var match string
	for i := 0; i < n; i++ {
		id := idOf(i)
		if id == arg {
			return id, nil
		}
		if strings.HasPrefix(id, arg) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", arg)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("no record matches id %q", arg)
	}
	return match, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return s[:maxLen]
	}
	return s[:maxLen-1] + "…"
}
