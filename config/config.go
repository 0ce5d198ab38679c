// Package config loads the server settings from the environment and the
// simulation assumptions from a TOML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds application configuration
type Config struct {
	// Server
	Port        string
	Environment string

	// Storage
	RedisAddr string
	CacheTTL  time.Duration
	DBPath    string

	// Rate limiting
	RateLimitPerMinute int

	// Advisor
	OpenAIAPIKey string

	AssumptionsFile string

	// Warnings lists the invalid values replaced by their default, for the
	// caller to log once the logger is configured.
	Warnings []string
}

// Load reads an optional .env file, then the environment, applying defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		DBPath:          getEnv("DB_PATH", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		AssumptionsFile: getEnv("ASSUMPTIONS_FILE", "assumptions.toml"),
	}

	ttlStr := getEnv("CACHE_TTL", "1h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl < 0 {
		config.Warnings = append(config.Warnings, fmt.Sprintf("invalid CACHE_TTL %q, falling back to 1h", ttlStr))
		ttl = time.Hour
	}
	config.CacheTTL = ttl

	limitStr := getEnv("RATE_LIMIT_PER_MINUTE", "30")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		config.Warnings = append(config.Warnings, fmt.Sprintf("invalid RATE_LIMIT_PER_MINUTE %q, falling back to 30", limitStr))
		limit = 30
	}
	config.RateLimitPerMinute = limit

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Assumptions are the simulation defaults applied when a request leaves a
// value out.
type Assumptions struct {
	Simulation SimulationAssumptions `toml:"simulation"`
}

type SimulationAssumptions struct {
	HoldingYears     int     `toml:"holding_years"`
	AppreciationRate float64 `toml:"appreciation_rate"`
	MonthlyIncome    float64 `toml:"monthly_income"`
}

// DefaultAssumptions holds 15 years of holding at 2% yearly appreciation.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Simulation: SimulationAssumptions{
			HoldingYears:     15,
			AppreciationRate: 0.02,
		},
	}
}

// LoadAssumptions overlays the TOML file at path on the defaults. A missing
// file or an empty path yields the defaults.
func LoadAssumptions(path string) (Assumptions, error) {
	assumptions := DefaultAssumptions()
	if path == "" {
		return assumptions, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return assumptions, nil
	}
	if err != nil {
		return assumptions, fmt.Errorf("failed to read assumptions file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &assumptions); err != nil {
		return DefaultAssumptions(), fmt.Errorf("failed to parse assumptions file %s: %w", path, err)
	}

	s := assumptions.Simulation
	if s.HoldingYears < 0 || s.HoldingYears > 50 {
		return DefaultAssumptions(), fmt.Errorf("holding_years must be within 0..50, got %d", s.HoldingYears)
	}
	if s.AppreciationRate < -1 || s.AppreciationRate > 1 {
		return DefaultAssumptions(), fmt.Errorf("appreciation_rate must be within -1..1, got %v", s.AppreciationRate)
	}
	if s.MonthlyIncome < 0 {
		return DefaultAssumptions(), fmt.Errorf("monthly_income must not be negative, got %v", s.MonthlyIncome)
	}
	return assumptions, nil
}
