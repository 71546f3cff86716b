package emissions_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoroute/internal/domain"
	"ecoroute/internal/metrics"
	"ecoroute/internal/services/emissions"
)

func TestCalculate(t *testing.T) {
	m := metrics.New()
	svc := emissions.New(nil, m)

	assert.Equal(t, 1.2, svc.Calculate(10, domain.ModeDriving))
	assert.Equal(t, 0.68, svc.Calculate(10, domain.ModeTransit))
	assert.Equal(t, 0.0, svc.Calculate(10, domain.ModeBicycling))
	assert.Equal(t, 1.0, svc.Calculate(10, "scooter"), "unknown modes use the fallback rate")
	assert.Equal(t, 0.0, svc.Calculate(0, domain.ModeDriving))
	assert.Equal(t, 0.0, svc.Calculate(-5, domain.ModeDriving))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EmissionRequests.WithLabelValues("driving")))
}

func TestCalculateCustomRates(t *testing.T) {
	svc := emissions.New(emissions.Rates{domain.ModeDriving: 0.2}, nil)
	assert.Equal(t, 2.0, svc.Calculate(10, domain.ModeDriving))
}

func TestCalculateVehicle(t *testing.T) {
	svc := emissions.New(nil, nil)

	tests := []struct {
		name  string
		vt    domain.VehicleType
		model string
		want  float64
	}{
		{name: "known_model", vt: emissions.VehicleCar, model: "hybrid", want: 8.0},
		{name: "unknown_model_uses_type_average", vt: emissions.VehicleCar, model: "warp", want: 12.0},
		{name: "empty_model_is_average", vt: emissions.VehicleTruck, model: "", want: 35.0},
		{name: "unknown_type", vt: "boat", model: "", want: 12.0},
		{name: "transit_train", vt: emissions.VehicleTransit, model: "train", want: 4.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.CalculateVehicle(100, tt.vt, tt.model))
		})
	}

	assert.Equal(t, 0.0, svc.CalculateVehicle(0, emissions.VehicleCar, "hybrid"))
}

func TestCompareRanksLowestFirst(t *testing.T) {
	svc := emissions.New(nil, nil)

	got := svc.Compare(10)
	require.Len(t, got, 4)

	modes := make([]domain.Mode, 0, len(got))
	for _, row := range got {
		modes = append(modes, row.Mode)
	}
	assert.Equal(t, []domain.Mode{domain.ModeBicycling, domain.ModeWalking, domain.ModeTransit, domain.ModeDriving}, modes)

	assert.Equal(t, domain.Grade("A+"), got[0].Grade)
	assert.Equal(t, domain.Grade("B"), got[2].Grade)
	assert.Equal(t, 0.068, got[2].EmissionKm)
	assert.Equal(t, domain.Grade("C"), got[3].Grade)
}

func TestSavings(t *testing.T) {
	svc := emissions.New(nil, nil)

	assert.Equal(t, 0.52, svc.Savings(10, domain.ModeTransit, ""))
	assert.Equal(t, 1.2, svc.Savings(10, domain.ModeWalking, domain.ModeDriving))
	assert.Equal(t, -0.52, svc.Savings(10, domain.ModeDriving, domain.ModeTransit))

	assert.Equal(t, 0.52, emissions.Saved(1.2, 0.68))
	assert.Equal(t, 0.0, emissions.Saved(0, 0))
}

func TestFootprint(t *testing.T) {
	svc := emissions.New(nil, nil)

	assert.Equal(t, domain.Footprint{
		TreesNeeded:        1,
		CarMilesEquivalent: 53.89,
		SmartphoneCharges:  2592,
		LightBulbHours:     36283,
	}, svc.Footprint(21.77))
}

func TestRating(t *testing.T) {
	svc := emissions.New(nil, nil)

	tests := []struct {
		emission, distance float64
		want               domain.Grade
	}{
		{emission: 1, distance: 0, want: "N/A"},
		{emission: 0, distance: 10, want: "A+"},
		{emission: 0.4, distance: 10, want: "A"},
		{emission: 0.9, distance: 10, want: "B"},
		{emission: 1.2, distance: 10, want: "C"},
		{emission: 1.8, distance: 10, want: "D"},
		{emission: 2.0, distance: 10, want: "E"},
	}
	for _, tt := range tests {
		grade, detail := svc.Rating(tt.emission, tt.distance)
		assert.Equal(t, tt.want, grade, "Rating(%v, %v)", tt.emission, tt.distance)
		assert.NotEmpty(t, detail)
	}
}

func TestVehiclesCatalogue(t *testing.T) {
	svc := emissions.New(nil, nil)

	vs := svc.Vehicles()
	require.Len(t, vs, 19)
	assert.Equal(t, emissions.VehicleCar, vs[0].Type)
	assert.Equal(t, emissions.VehicleTruck, vs[len(vs)-1].Type)

	vs[0].Name = "mutated"
	assert.NotEqual(t, "mutated", svc.Vehicles()[0].Name)
}

func TestModeInfoAndTips(t *testing.T) {
	svc := emissions.New(nil, nil)

	assert.Equal(t, "Public Transit", svc.ModeInfo(domain.ModeTransit).Name)
	assert.Equal(t, "Hoverboard", svc.ModeInfo("hoverboard").Name)
	assert.Equal(t, "Varies by mode", svc.ModeInfo("hoverboard").Benefits)

	assert.Len(t, svc.Tips(domain.ModeWalking), 3)
	assert.Equal(t, []string{"Choose the most sustainable option available"}, svc.Tips("hoverboard"))
}
