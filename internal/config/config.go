// Package config loads and persists runcast settings: the decay model
// parameters, the material ratio table, and the cash balance.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DateFormat is how dates are written in the config file and on the CLI.
const DateFormat = "2006-01-02"

// Config holds all runcast configuration.
type Config struct {
	Forecast ForecastConfig `toml:"forecast"`
	Cash     CashConfig     `toml:"cash"`
	UI       UIConfig       `toml:"ui"`
}

// ForecastConfig holds the revenue-model and material-cost settings.
type ForecastConfig struct {
	// DecayCoefficient is the λ of the time-decay model. Must be positive.
	DecayCoefficient float64 `toml:"decay_coefficient"`

	// BaseDate anchors the decay computation, format "2006-01-02".
	// Empty means today.
	BaseDate string `toml:"base_date,omitempty"`

	// DefaultMaterialRatio applies to business lines missing from
	// MaterialRatios. Fraction of corrected revenue, 0-1.
	DefaultMaterialRatio float64 `toml:"default_material_ratio"`

	// MaterialRatios maps a business line to its material cost fraction.
	MaterialRatios map[string]float64 `toml:"material_ratios,omitempty"`
}

// CashConfig holds the runway inputs.
type CashConfig struct {
	StartingBalance float64 `toml:"starting_balance"`
}

// UIConfig holds dashboard appearance settings. An unknown theme name falls
// back to the default.
type UIConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration: the industry-baseline
// decay coefficient and the standard material ratios per business line.
func DefaultConfig() Config {
	return Config{
		Forecast: ForecastConfig{
			DecayCoefficient:     0.0315,
			DefaultMaterialRatio: 0.30,
			MaterialRatios: map[string]float64{
				"spectroscopy": 0.30,
				"dispensing":   0.35,
				"automation":   0.40,
			},
		},
		UI: UIConfig{Theme: "flexoki-dark"},
	}
}

// Base returns the configured base date, or today when unset.
func (f ForecastConfig) Base() (time.Time, error) {
	if f.BaseDate == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(DateFormat, f.BaseDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid base_date %q: %w", f.BaseDate, err)
	}
	return t, nil
}

// Validate rejects configurations the engine would misbehave on.
func (c Config) Validate() error {
	if c.Forecast.DecayCoefficient <= 0 {
		return fmt.Errorf("decay_coefficient must be positive, got %v", c.Forecast.DecayCoefficient)
	}
	if _, err := c.Forecast.Base(); err != nil {
		return err
	}
	if r := c.Forecast.DefaultMaterialRatio; r < 0 || r > 1 {
		return fmt.Errorf("default_material_ratio %v out of range 0-1", r)
	}
	for line, r := range c.Forecast.MaterialRatios {
		if r < 0 || r > 1 {
			return fmt.Errorf("material ratio for %q out of range 0-1: %v", line, r)
		}
	}
	if c.Cash.StartingBalance < 0 {
		return fmt.Errorf("starting_balance must not be negative, got %v", c.Cash.StartingBalance)
	}
	return nil
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "runcast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "runcast")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory holding the database.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "runcast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "runcast")
}

// DatabasePath returns the default path of the sqlite database.
func DatabasePath() string {
	return filepath.Join(DataDir(), "runcast.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
