package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"PORT", "ENVIRONMENT", "REDIS_ADDR", "CACHE_TTL", "DB_PATH", "RATE_LIMIT_PER_MINUTE", "OPENAI_API_KEY", "ASSUMPTIONS_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Empty(t, cfg.DBPath)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.Equal(t, "assumptions.toml", cfg.AssumptionsFile)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("DB_PATH", "history.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, "history.db", cfg.DBPath)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "-4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.Len(t, cfg.Warnings, 2)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("PORT", "")
	require.NoError(t, os.Unsetenv("PORT"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7070\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
}

func TestLoadAssumptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assumptions.toml")
	content := `
[simulation]
holding_years = 20
appreciation_rate = 0.015
monthly_income = 4500
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	assumptions, err := LoadAssumptions(path)
	require.NoError(t, err)

	assert.Equal(t, 20, assumptions.Simulation.HoldingYears)
	assert.Equal(t, 0.015, assumptions.Simulation.AppreciationRate)
	assert.Equal(t, 4500.0, assumptions.Simulation.MonthlyIncome)
}

func TestLoadAssumptions_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assumptions.toml")
	require.NoError(t, os.WriteFile(path, []byte("[simulation]\nmonthly_income = 3000\n"), 0o600))

	assumptions, err := LoadAssumptions(path)
	require.NoError(t, err)

	assert.Equal(t, 15, assumptions.Simulation.HoldingYears)
	assert.Equal(t, 0.02, assumptions.Simulation.AppreciationRate)
	assert.Equal(t, 3000.0, assumptions.Simulation.MonthlyIncome)
}

func TestLoadAssumptions_MissingFile(t *testing.T) {
	assumptions, err := LoadAssumptions(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAssumptions(), assumptions)

	assumptions, err = LoadAssumptions("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAssumptions(), assumptions)
}

func TestLoadAssumptions_Invalid(t *testing.T) {
	tests := map[string]string{
		"malformed":       "[simulation\nholding_years = 3",
		"holding range":   "[simulation]\nholding_years = 80\n",
		"appreciation":    "[simulation]\nappreciation_rate = 2.5\n",
		"negative income": "[simulation]\nmonthly_income = -1\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "assumptions.toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			assumptions, err := LoadAssumptions(path)

			assert.Error(t, err)
			assert.Equal(t, DefaultAssumptions(), assumptions)
		})
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
