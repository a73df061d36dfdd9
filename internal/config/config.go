package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"odds-allocator/internal/allocation"
	"odds-allocator/internal/odds"
)

// Defaults for configuration values.
const (
	DefaultEnv             = "prod"
	DefaultLogLevel        = "warn"
	DefaultRoundingUnit    = allocation.DefaultRoundingUnit
	DefaultProfitThreshold = allocation.DefaultProfitThreshold
	DefaultOddsFormat      = odds.FormatDecimal
)

// Config holds all application configuration.
type Config struct {
	Env      string // "local" switches to the development logger
	LogLevel string

	// Allocation settings
	RoundingUnit    float64
	ProfitThreshold float64 // ROI percentage above which an allocation is profitable
	OddsFormat      odds.Format

	// Console settings
	ShowPrompts bool
}

// Load reads configuration from environment variables (and .env file if present).
func Load() Config {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg := Config{
		Env:             DefaultEnv,
		LogLevel:        DefaultLogLevel,
		RoundingUnit:    DefaultRoundingUnit,
		ProfitThreshold: DefaultProfitThreshold,
		OddsFormat:      DefaultOddsFormat,
		ShowPrompts:     true,
	}

	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if v := os.Getenv("ROUNDING_UNIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RoundingUnit = f
		}
	}

	if v := os.Getenv("PROFIT_THRESHOLD_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.ProfitThreshold = f
		}
	}

	if v := os.Getenv("ODDS_FORMAT"); v != "" {
		cfg.OddsFormat = odds.Format(strings.ToLower(strings.TrimSpace(v)))
	}

	if os.Getenv("SHOW_PROMPTS") == "false" {
		cfg.ShowPrompts = false
	}

	return cfg
}

// Validate checks that configuration values are within acceptable ranges.
func Validate(cfg Config) error {
	if cfg.RoundingUnit <= 0 {
		return fmt.Errorf("ROUNDING_UNIT must be positive, got %f", cfg.RoundingUnit)
	}
	if cfg.ProfitThreshold < -100 {
		return fmt.Errorf("PROFIT_THRESHOLD_PCT must be at least -100, got %f", cfg.ProfitThreshold)
	}
	if _, err := odds.ParseFormat(string(cfg.OddsFormat)); err != nil {
		return fmt.Errorf("ODDS_FORMAT: %w", err)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}
	return nil
}

// FormatUnit returns a human-readable string for the rounding unit.
func FormatUnit(unit float64) string {
	if unit == float64(int64(unit)) {
		return fmt.Sprintf("%d", int64(unit))
	}
	return strconv.FormatFloat(unit, 'f', -1, 64)
}
