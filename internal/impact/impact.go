package impact

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"ecoroute/internal/domain"
)

const (
	// TreeAbsorptionKg is the CO2 one tree absorbs, in kg.
	TreeAbsorptionKg = 0.022
	// DrivingEmissionKgPerKm is the CO2 an average car emits per km.
	DrivingEmissionKgPerKm = 0.12

	// exponentThreshold is where fixed notation gives way to exponent form.
	exponentThreshold = 1e21
)

// Converter holds the constants used by Convert. Zero fields fall back to
// the package defaults.
type Converter struct {
	TreeAbsorptionKg       float64
	DrivingEmissionKgPerKm float64
}

// Default is the converter used by the package-level Convert.
var Default = Converter{
	TreeAbsorptionKg:       TreeAbsorptionKg,
	DrivingEmissionKgPerKm: DrivingEmissionKgPerKm,
}

// Convert maps kilograms of CO2 saved to trees and driving kilometres
// using the default constants.
func Convert(emissionSavings float64) domain.Impact {
	return Default.Convert(emissionSavings)
}

// Convert maps kilograms of CO2 saved to trees (rounded half away from
// zero) and driving kilometres (fixed to one decimal place).
func (c Converter) Convert(emissionSavings float64) domain.Impact {
	tree := c.TreeAbsorptionKg
	if tree == 0 {
		tree = TreeAbsorptionKg
	}
	perKm := c.DrivingEmissionKgPerKm
	if perKm == 0 {
		perKm = DrivingEmissionKgPerKm
	}

	return domain.Impact{
		Trees:     math.Round(emissionSavings / tree),
		DrivingKm: FormatFixed(emissionSavings/perKm, 1),
	}
}

// FormatFixed renders v with exactly places decimals. Rounding is applied
// to the exact binary value of v, half away from zero, so 1.15 (stored as
// 1.149999...) becomes "1.1" while 0.25 becomes "0.3".
func FormatFixed(v float64, places int32) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= exponentThreshold:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	s := exact(v).StringFixed(places)
	if v < 0 && !strings.HasPrefix(s, "-") {
		// values that round to zero keep their sign
		s = "-" + s
	}
	return s
}

// exact returns the decimal holding precisely the binary value of v.
func exact(v float64) decimal.Decimal {
	if v == 0 {
		return decimal.Zero
	}
	frac, exp := math.Frexp(v)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53

	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	// m * 2^-k == m * 5^k * 10^-k
	pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, pow), int32(exp))
}

// Compile-time assertion that Converter implements domain.ImpactConverter.
var _ domain.ImpactConverter = Converter{}
