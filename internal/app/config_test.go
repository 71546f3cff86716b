package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoroute/internal/app"
	"ecoroute/internal/domain"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ecoroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := app.LoadWithEnv("", env(nil))
	require.NoError(t, err)

	assert.Equal(t, app.Default(), cfg)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, 0.12, cfg.EmissionRates["driving"])
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
emission_rates:
  driving: 0.15
  scooter: 0.02
impact:
  driving_emission_kg_per_km: 0.2
search:
  debounce: 150ms
  min_query_length: 4
`)

	cfg, err := app.LoadWithEnv(path, env(map[string]string{
		"EMISSION_RATE_TRANSIT": "0.05",
		"ECOROUTE_DEBOUNCE":     "1s",
	}))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 0.15, cfg.EmissionRates["driving"])
	assert.Equal(t, 0.05, cfg.EmissionRates["transit"])
	assert.Equal(t, 0.0, cfg.EmissionRates["walking"], "defaults survive a partial map")
	assert.Equal(t, 0.02, cfg.Rates()["scooter"])
	assert.Equal(t, 0.2, cfg.Impact.DrivingEmissionKgPerKm)
	assert.Equal(t, 0.022, cfg.Impact.TreeAbsorptionKg)
	assert.Equal(t, time.Second, cfg.Search.Debounce)
	assert.Equal(t, 4, cfg.Search.MinQueryLength)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		env  map[string]string
	}{
		{
			name: "explicit_path_missing",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
		},
		{
			name: "bad_yaml",
			path: func(t *testing.T) string { return writeConfig(t, "search: [") },
		},
		{
			name: "negative_rate",
			path: func(t *testing.T) string { return writeConfig(t, "emission_rates:\n  driving: -1\n") },
		},
		{
			name: "bad_env_rate",
			path: func(*testing.T) string { return "" },
			env:  map[string]string{"EMISSION_RATE_DRIVING": "lots"},
		},
		{
			name: "bad_env_duration",
			path: func(*testing.T) string { return "" },
			env:  map[string]string{"ECOROUTE_DEBOUNCE": "soon"},
		},
		{
			name: "negative_debounce",
			path: func(*testing.T) string { return "" },
			env:  map[string]string{"ECOROUTE_DEBOUNCE": "-1s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.LoadWithEnv(tt.path(t), env(tt.env))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}
