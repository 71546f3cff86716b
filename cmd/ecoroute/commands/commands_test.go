package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoroute/internal/domain"
	"ecoroute/internal/services/share"
	"ecoroute/internal/services/validation"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestImpactCmd(t *testing.T) {
	out, err := run(t, "", "impact", "22")
	require.NoError(t, err)
	assert.Equal(t, "Trees: 1000\nDriving km: 183.3\n", out)

	out, err = run(t, "", "impact", "0")
	require.NoError(t, err)
	assert.Equal(t, "Trees: 0\nDriving km: 0.0\n", out)

	_, err = run(t, "", "impact", "lots")
	assert.Error(t, err)
}

func TestEmissionCmd(t *testing.T) {
	out, err := run(t, "", "emission", "10", "--mode", "transit")
	require.NoError(t, err)
	assert.Contains(t, out, "transit: 0.680 kg CO2 over 10 km")
	assert.Contains(t, out, "Rating: B ")
	assert.Contains(t, out, "Equivalent to: 0.03 tree-years, 1.68 car miles, 81 smartphone charges, 1133 light-bulb hours\n")

	out, err = run(t, "", "emission", "100", "--vehicle", "car", "--model", "hybrid")
	require.NoError(t, err)
	assert.Contains(t, out, "car/hybrid: 8.000 kg CO2 over 100 km")

	_, err = run(t, "", "emission", "10", "--mode", "teleport")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCompareCmd(t *testing.T) {
	out, err := run(t, "", "compare", "10")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 5)
	assert.True(t, strings.HasPrefix(lines[1], "bicycling"))
	assert.True(t, strings.HasPrefix(lines[4], "driving"))
	assert.Contains(t, lines[1], "1.200")
	assert.Contains(t, out, "Best option:")
}

func TestCompareCmdCalculatesEachModeOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.prom")
	_, err := run(t, "", "compare", "10", "--metrics-file", path)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, mode := range domain.Modes {
		assert.Contains(t, string(b), `ecoroute_emissions_calculations_total{mode="`+mode.String()+`"} 1`+"\n")
	}
}

func TestValidateCmd(t *testing.T) {
	out, err := run(t, "", "validate", " Berlin", "Potsdam ")
	require.NoError(t, err)
	assert.Equal(t, "ok: Berlin -> Potsdam\n", out)

	_, err = run(t, "", "validate", "Berlin", "Berlin")
	require.Error(t, err)
	assert.Equal(t, validation.MsgSameEndpoint, err.Error())
}

func TestValidateCmdCoordinates(t *testing.T) {
	out, err := run(t, "", "validate", "Berlin  Hbf", "Potsdam", "--lat", "52.525", "--lon", "13.369")
	require.NoError(t, err)
	assert.Equal(t, "ok: Berlin Hbf -> Potsdam\norigin at: 52.525, 13.369\n", out)

	_, err = run(t, "", "validate", "Berlin", "Potsdam", "--lat", "91")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Latitude must be between -90 and 90", err.Error())
}

func TestVehiclesCmd(t *testing.T) {
	out, err := run(t, "", "vehicles")
	require.NoError(t, err)
	assert.Contains(t, out, "Hybrid Vehicle")
	assert.Contains(t, out, "0.068 pp")
}

func TestSearchCmdCollapsesBurst(t *testing.T) {
	out, err := run(t, "B\nBe\nBer\nBerlin\n", "search")
	require.NoError(t, err)
	assert.Equal(t, "searching for: Berlin\ninputs: 4, settled: 1\n", out)
}

func TestShareCmd(t *testing.T) {
	out, err := run(t, "", "share")
	require.NoError(t, err)
	assert.Equal(t, share.Text+"\n", out)

	path := filepath.Join(t.TempDir(), "clip.txt")
	out, err = run(t, "", "share", "22", "--clipboard-file", path)
	require.NoError(t, err)
	assert.Equal(t, "Route information copied to clipboard!\n", out)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "1000 trees")
}

func TestMetricsFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.prom")
	_, err := run(t, "", "impact", "1", "--metrics-file", path)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "ecoroute_impact_conversions_total 1")
}

func TestMissingConfigFails(t *testing.T) {
	_, err := run(t, "", "impact", "1", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
