package config

import (
	"testing"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Forecast.DecayCoefficient != 0.0315 {
		t.Fatalf("decay coefficient = %v", cfg.Forecast.DecayCoefficient)
	}
}

func TestValidate_RejectsNonPositiveDecay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Forecast.DecayCoefficient = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero decay coefficient")
	}
	cfg.Forecast.DecayCoefficient = -0.01
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative decay coefficient")
	}
}

func TestValidate_RejectsBadRatios(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Forecast.MaterialRatios["automation"] = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for ratio above 1")
	}

	cfg = DefaultConfig()
	cfg.Forecast.DefaultMaterialRatio = -0.1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative default ratio")
	}
}

func TestValidate_RejectsNegativeBalance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cash.StartingBalance = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative starting balance")
	}
}

func TestBase_ParsesConfiguredDate(t *testing.T) {
	f := ForecastConfig{BaseDate: "2025-12-08"}
	base, err := f.Base()
	if err != nil {
		t.Fatalf("Base: %v", err)
	}
	if base.Year() != 2025 || base.Day() != 8 {
		t.Fatalf("base = %s", base.Format(DateFormat))
	}

	f.BaseDate = "12/08/2025"
	if _, err := f.Base(); err == nil {
		t.Fatal("expected error for malformed base date")
	}
}

func TestBase_DefaultsToToday(t *testing.T) {
	base, err := ForecastConfig{}.Base()
	if err != nil {
		t.Fatalf("Base: %v", err)
	}
	if base.IsZero() {
		t.Fatal("expected non-zero default base date")
	}
	if base.Hour() != 0 || base.Minute() != 0 {
		t.Fatal("default base date should be truncated to midnight")
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Forecast.BaseDate = "2025-12-08"
	cfg.Cash.StartingBalance = 500
	cfg.Forecast.MaterialRatios["consulting"] = 0.15

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file should exist after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Cash.StartingBalance != 500 {
		t.Fatalf("starting balance = %v", got.Cash.StartingBalance)
	}
	if got.Forecast.BaseDate != "2025-12-08" {
		t.Fatalf("base date = %q", got.Forecast.BaseDate)
	}
	if got.Forecast.MaterialRatios["consulting"] != 0.15 {
		t.Fatalf("material ratios = %v", got.Forecast.MaterialRatios)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Forecast.DecayCoefficient != 0.0315 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSave_RejectsInvalidConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := DefaultConfig()
	cfg.Forecast.DecayCoefficient = -1
	if err := Save(cfg); err == nil {
		t.Fatal("expected error saving invalid config")
	}
}
