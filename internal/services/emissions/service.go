package emissions

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"unicode"

	"ecoroute/internal/domain"
	"ecoroute/internal/logger"
	"ecoroute/internal/metrics"
)

const (
	// fallbackModeRate applies to modes missing from the rate table.
	fallbackModeRate = 0.1
	// fallbackVehicleRate applies to vehicle types missing from the catalogue.
	fallbackVehicleRate = 0.120
)

// EPA equivalence factors, kg CO2 per unit.
const (
	treeYearKg      = 21.77
	carMileKg       = 0.404
	smartphoneKg    = 0.0084
	lightBulbHourKg = 0.0006
)

// Rates maps a transport mode to kg CO2 per km.
type Rates map[domain.Mode]float64

// DefaultRates returns the built-in per-mode rates.
func DefaultRates() Rates {
	return Rates{
		domain.ModeDriving:   0.120,
		domain.ModeTransit:   0.068,
		domain.ModeBicycling: 0.0,
		domain.ModeWalking:   0.0,
	}
}

// Service computes emissions from a rate table and the vehicle catalogue.
type Service struct {
	rates   Rates
	metrics *metrics.Set
}

// New returns a service using rates; m may be nil.
func New(rates Rates, m *metrics.Set) *Service {
	if rates == nil {
		rates = DefaultRates()
	}
	logger.Debugf("emissions service initialized with rates: %v", rates)
	return &Service{rates: rates, metrics: m}
}

// Calculate returns kg CO2 for distanceKm travelled by mode.
// Non-positive distances give zero.
func (s *Service) Calculate(distanceKm float64, mode domain.Mode) float64 {
	if distanceKm <= 0 {
		return 0
	}
	if s.metrics != nil {
		s.metrics.EmissionRequests.WithLabelValues(mode.String()).Inc()
	}

	rate, ok := s.rates[mode]
	if !ok {
		rate = fallbackModeRate
	}
	emission := round(distanceKm*rate, 3)
	logger.Debugf("calculated emission for %s: %.3f kg CO2 for %v km", mode, emission, distanceKm)
	return emission
}

// CalculateVehicle returns kg CO2 for distanceKm in a specific vehicle.
// An unknown model uses the type's average; an unknown type uses the
// average car rate.
func (s *Service) CalculateVehicle(distanceKm float64, vehicleType domain.VehicleType, model string) float64 {
	if distanceKm <= 0 {
		return 0
	}
	if model == "" {
		model = averageModel
	}

	rate := VehicleRate(vehicleType, model)
	emission := round(distanceKm*rate, 3)
	logger.Debugf("calculated vehicle emission for %s/%s: %.3f kg CO2 for %v km", vehicleType, model, emission, distanceKm)
	return emission
}

// VehicleRate looks up kg CO2 per km for a catalogue entry.
func VehicleRate(vehicleType domain.VehicleType, model string) float64 {
	for _, v := range catalog {
		if v.Type == vehicleType && v.Model == model {
			return v.RateKgPerKm
		}
	}
	if rate, ok := averageRates[vehicleType]; ok {
		return rate
	}
	return fallbackVehicleRate
}

// Vehicles returns a copy of the catalogue, grouped by type.
func (s *Service) Vehicles() []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(catalog))
	for _, t := range vehicleTypes {
		for _, v := range catalog {
			if v.Type == t {
				out = append(out, v)
			}
		}
	}
	return out
}

// Compare computes every configured mode over distanceKm, lowest emission
// first. Ties keep display order.
func (s *Service) Compare(distanceKm float64) []domain.ModeEmission {
	out := make([]domain.ModeEmission, 0, len(s.rates))
	for _, mode := range s.modes() {
		emission := s.Calculate(distanceKm, mode)
		grade, detail := s.Rating(emission, distanceKm)

		var perKm float64
		if distanceKm > 0 {
			perKm = round(emission/distanceKm, 3)
		}
		out = append(out, domain.ModeEmission{
			Mode:        mode,
			DistanceKm:  distanceKm,
			EmissionKg:  emission,
			EmissionKm:  perKm,
			Grade:       grade,
			GradeDetail: detail,
		})
	}

	slices.SortStableFunc(out, func(a, b domain.ModeEmission) int {
		return cmp.Compare(a.EmissionKg, b.EmissionKg)
	})
	return out
}

// modes lists the known modes first, then any extra configured ones sorted.
func (s *Service) modes() []domain.Mode {
	modes := make([]domain.Mode, 0, len(s.rates))
	for _, m := range domain.Modes {
		if _, ok := s.rates[m]; ok {
			modes = append(modes, m)
		}
	}
	var extra []domain.Mode
	for m := range s.rates {
		if !slices.Contains(domain.Modes, m) {
			extra = append(extra, m)
		}
	}
	slices.Sort(extra)
	return append(modes, extra...)
}

// Savings is the CO2 avoided by taking chosen instead of baseline.
func (s *Service) Savings(distanceKm float64, chosen, baseline domain.Mode) float64 {
	if baseline == "" {
		baseline = domain.ModeDriving
	}
	return Saved(s.Calculate(distanceKm, baseline), s.Calculate(distanceKm, chosen))
}

// Saved is the CO2 avoided when chosenKg replaces baselineKg, for callers
// that already hold both amounts.
func Saved(baselineKg, chosenKg float64) float64 {
	return round(baselineKg-chosenKg, 3)
}

// Footprint expresses emissionKg in everyday equivalents.
func (s *Service) Footprint(emissionKg float64) domain.Footprint {
	return domain.Footprint{
		TreesNeeded:        round(emissionKg/treeYearKg, 2),
		CarMilesEquivalent: round(emissionKg/carMileKg, 2),
		SmartphoneCharges:  round(emissionKg/smartphoneKg, 0),
		LightBulbHours:     round(emissionKg/lightBulbHourKg, 0),
	}
}

// Rating grades emissions per km.
func (s *Service) Rating(emissionKg, distanceKm float64) (domain.Grade, string) {
	if distanceKm <= 0 {
		return "N/A", "No emissions data available"
	}

	perKm := emissionKg / distanceKm
	switch {
	case perKm == 0:
		return "A+", "Zero emissions - excellent environmental choice!"
	case perKm < 0.05:
		return "A", "Very low emissions - great for the environment"
	case perKm < 0.1:
		return "B", "Low emissions - good environmental choice"
	case perKm < 0.15:
		return "C", "Moderate emissions - consider greener alternatives"
	case perKm < 0.2:
		return "D", "High emissions - better alternatives available"
	default:
		return "E", "Very high emissions - consider sustainable alternatives"
	}
}

// ModeInfo describes mode; unknown modes get a generic card.
func (s *Service) ModeInfo(mode domain.Mode) domain.ModeInfo {
	if info, ok := modeInfo[mode]; ok {
		return info
	}
	return domain.ModeInfo{
		Name:        title(mode.String()),
		Icon:        "🌍",
		Description: "Alternative transport mode",
		Benefits:    "Varies by mode",
		Drawbacks:   "Varies by mode",
	}
}

// Tips returns advice for travelling by mode.
func (s *Service) Tips(mode domain.Mode) []string {
	if t, ok := tips[mode]; ok {
		return slices.Clone(t)
	}
	return []string{"Choose the most sustainable option available"}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Compile-time assertion that Service implements domain.EmissionsService.
var _ domain.EmissionsService = (*Service)(nil)
