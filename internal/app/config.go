package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"ecoroute/internal/domain"
	"ecoroute/internal/impact"
	"ecoroute/internal/services/emissions"
	"ecoroute/internal/services/search"
)

// DefaultConfigPath is read when no --config is given; it may be absent.
const DefaultConfigPath = "ecoroute.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	LogLevel    string `yaml:"log_level"`    // debug, info, warn, error, fatal
	MetricsFile string `yaml:"metrics_file"` // written on exit when set

	// EmissionRates overrides kg CO2/km per transport mode.
	EmissionRates map[string]float64 `yaml:"emission_rates"`

	Impact ImpactConfig `yaml:"impact"`
	Search SearchConfig `yaml:"search"`
}

// ImpactConfig overrides the impact conversion constants.
type ImpactConfig struct {
	TreeAbsorptionKg       float64 `yaml:"tree_absorption_kg"`
	DrivingEmissionKgPerKm float64 `yaml:"driving_emission_kg_per_km"`
}

// SearchConfig tunes the location-input debouncer.
type SearchConfig struct {
	Debounce       time.Duration `yaml:"debounce"`
	MinQueryLength int           `yaml:"min_query_length"`
}

// envRates maps environment variables to the mode they override.
var envRates = map[string]domain.Mode{
	"EMISSION_RATE_DRIVING":   domain.ModeDriving,
	"EMISSION_RATE_TRANSIT":   domain.ModeTransit,
	"EMISSION_RATE_BICYCLING": domain.ModeBicycling,
	"EMISSION_RATE_WALKING":   domain.ModeWalking,
}

// Default returns the built-in configuration.
func Default() Config {
	rates := make(map[string]float64, len(domain.Modes))
	for mode, rate := range emissions.DefaultRates() {
		rates[mode.String()] = rate
	}
	return Config{
		LogLevel:      "info",
		EmissionRates: rates,
		Impact: ImpactConfig{
			TreeAbsorptionKg:       impact.TreeAbsorptionKg,
			DrivingEmissionKgPerKm: impact.DrivingEmissionKgPerKm,
		},
		Search: SearchConfig{
			Debounce:       search.DefaultWait,
			MinQueryLength: search.DefaultMinQueryLength,
		},
	}
}

// Load resolves configuration from the process environment.
// See LoadWithEnv.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv layers defaults, the YAML file at path and environment
// variables from lookup. An empty path reads DefaultConfigPath if it exists;
// an explicit path must exist.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}
	b, err := readFile(path)
	if err != nil {
		return Config{}, domain.ConfigError(path, err)
	}
	if b == nil && explicit {
		return Config{}, domain.ConfigError(path, os.ErrNotExist)
	}
	if len(b) > 0 {
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, domain.ConfigError(path, err)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if c.EmissionRates == nil {
		c.EmissionRates = make(map[string]float64, len(envRates))
	}
	for key, mode := range envRates {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return domain.ConfigError(key, err)
		}
		c.EmissionRates[mode.String()] = rate
	}

	if v, ok := lookup("ECOROUTE_DEBOUNCE"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return domain.ConfigError("ECOROUTE_DEBOUNCE", err)
		}
		c.Search.Debounce = d
	}
	if v, ok := lookup("ECOROUTE_MIN_QUERY_LENGTH"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return domain.ConfigError("ECOROUTE_MIN_QUERY_LENGTH", err)
		}
		c.Search.MinQueryLength = n
	}
	if v, ok := lookup("ECOROUTE_METRICS_FILE"); ok {
		c.MetricsFile = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate rejects values no component can work with.
func (c Config) Validate() error {
	if c.EmissionRates == nil {
		return domain.ConfigError("emission_rates", errors.New("must not be empty"))
	}
	for mode, rate := range c.EmissionRates {
		if rate < 0 {
			return domain.ConfigError("emission_rates."+mode, fmt.Errorf("negative rate %v", rate))
		}
	}
	if c.Impact.TreeAbsorptionKg < 0 || c.Impact.DrivingEmissionKgPerKm < 0 {
		return domain.ConfigError("impact", errors.New("constants must not be negative"))
	}
	if c.Search.Debounce < 0 {
		return domain.ConfigError("search.debounce", fmt.Errorf("negative duration %s", c.Search.Debounce))
	}
	if c.Search.MinQueryLength < 0 {
		return domain.ConfigError("search.min_query_length", fmt.Errorf("negative length %d", c.Search.MinQueryLength))
	}
	return nil
}

// Rates converts EmissionRates to the emissions service's table.
func (c Config) Rates() emissions.Rates {
	rates := make(emissions.Rates, len(c.EmissionRates))
	for mode, rate := range c.EmissionRates {
		rates[domain.Mode(strings.ToLower(mode))] = rate
	}
	return rates
}
