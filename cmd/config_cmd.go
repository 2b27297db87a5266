// Package cmd implements the runcast CLI commands.
package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/runcastdev/runcast/internal/cli"
	"github.com/runcastdev/runcast/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save it to the config file.

Keys:
  decay           decay coefficient λ (positive float)
  base            forecast base date, YYYY-MM-DD (empty string clears it)
  balance         starting cash balance
  default-ratio   material ratio fallback, 0-1
  ratio.<line>    material ratio for one business line, 0-1
  theme           dashboard color theme`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Forecast]")
	fmt.Printf("    Decay coefficient: %v\n", cfg.Forecast.DecayCoefficient)
	if cfg.Forecast.BaseDate != "" {
		fmt.Printf("    Base date:         %s\n", cfg.Forecast.BaseDate)
	} else {
		fmt.Println("    Base date:         today")
	}
	fmt.Printf("    Default ratio:     %.2f\n", cfg.Forecast.DefaultMaterialRatio)

	lines := make([]string, 0, len(cfg.Forecast.MaterialRatios))
	for line := range cfg.Forecast.MaterialRatios {
		lines = append(lines, line)
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Printf("    Ratio %-12s %.2f\n", line+":", cfg.Forecast.MaterialRatios[line])
	}
	fmt.Println()

	fmt.Println("  [Cash]")
	fmt.Printf("    Starting balance: %s\n", cli.FormatAmount(cfg.Cash.StartingBalance))
	fmt.Println()

	fmt.Println("  [UI]")
	fmt.Printf("    Theme: %s\n", cfg.UI.Theme)
	fmt.Println()

	fmt.Printf("  Database: %s\n", config.DatabasePath())
	fmt.Println()
	fmt.Println("  Run `runcast setup` to reconfigure interactively.")
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch {
	case key == "decay":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid decay coefficient %q: %w", value, err)
		}
		cfg.Forecast.DecayCoefficient = v
	case key == "base":
		cfg.Forecast.BaseDate = value
	case key == "balance":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid balance %q: %w", value, err)
		}
		cfg.Cash.StartingBalance = v
	case key == "default-ratio":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid ratio %q: %w", value, err)
		}
		cfg.Forecast.DefaultMaterialRatio = v
	case key == "theme":
		cfg.UI.Theme = value
	case strings.HasPrefix(key, "ratio."):
		line := strings.TrimPrefix(key, "ratio.")
		if line == "" {
			return fmt.Errorf("ratio key needs a business line, e.g. ratio.automation")
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid ratio %q: %w", value, err)
		}
		if cfg.Forecast.MaterialRatios == nil {
			cfg.Forecast.MaterialRatios = make(map[string]float64)
		}
		cfg.Forecast.MaterialRatios[line] = v
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  Saved %s to %s\n", key, config.ConfigPath())
	return nil
}
