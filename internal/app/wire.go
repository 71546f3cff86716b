package app

import (
	"context"
	"io"

	"ecoroute/internal/domain"
	"ecoroute/internal/impact"
	"ecoroute/internal/logger"
	"ecoroute/internal/metrics"
	"ecoroute/internal/services/emissions"
	"ecoroute/internal/services/search"
	"ecoroute/internal/services/share"
	"ecoroute/internal/services/validation"
)

// Wire bundles all services and collectors for the CLI.
type Wire struct {
	Config    Config
	Metrics   *metrics.Set
	Impact    domain.ImpactConverter
	Emissions domain.EmissionsService
	Validator domain.FormValidator
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.SetLevel(cfg.LogLevel)

	m := metrics.New()
	return &Wire{
		Config:  cfg,
		Metrics: m,
		Impact: impact.Converter{
			TreeAbsorptionKg:       cfg.Impact.TreeAbsorptionKg,
			DrivingEmissionKgPerKm: cfg.Impact.DrivingEmissionKgPerKm,
		},
		Emissions: emissions.New(cfg.Rates(), m),
		Validator: validation.New(m),
	}, nil
}

// Convert runs the impact conversion and counts it.
func (w *Wire) Convert(savingsKg float64) domain.Impact {
	w.Metrics.Conversions.Inc()
	return w.Impact.Convert(savingsKg)
}

// NewSearch returns a search adapter configured from w.Config.
func (w *Wire) NewSearch(ctx context.Context, handler domain.QueryHandler) *search.Service {
	return search.New(ctx, handler, search.Options{
		Wait:           w.Config.Search.Debounce,
		MinQueryLength: w.Config.Search.MinQueryLength,
	}, w.Metrics)
}

// NewShare returns a share service delivering to clipboard or out.
func (w *Wire) NewShare(clipboard domain.Clipboard, out io.Writer) *share.Service {
	return share.New(clipboard, out, countingConverter{w})
}

// Close flushes the metrics file when one is configured.
func (w *Wire) Close() error {
	if w.Config.MetricsFile == "" {
		return nil
	}
	if err := w.Metrics.WriteFile(w.Config.MetricsFile); err != nil {
		return domain.ConfigError("metrics_file", err)
	}
	logger.Debugf("metrics written to %s", w.Config.MetricsFile)
	return nil
}

// countingConverter routes share conversions through Wire.Convert.
type countingConverter struct{ w *Wire }

func (c countingConverter) Convert(savingsKg float64) domain.Impact { return c.w.Convert(savingsKg) }
