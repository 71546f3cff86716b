package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ecoroute/internal/domain"
	"ecoroute/internal/services/validation"
)

func emissionCmd() *cobra.Command {
	var (
		mode    string
		vehicle string
		model   string
	)

	cmd := &cobra.Command{
		Use:   "emission <km>",
		Short: "CO2 emitted over a distance by mode or vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := parseDistance(args[0])
			if err != nil {
				return err
			}

			var emission float64
			label := mode
			if vehicle != "" {
				emission = appCtx.Emissions.CalculateVehicle(km, domain.VehicleType(vehicle), model)
				label = vehicle
				if model != "" {
					label += "/" + model
				}
			} else {
				m, err := validation.TransportMode(mode)
				if err != nil {
					return err
				}
				emission = appCtx.Emissions.Calculate(km, m)
			}

			grade, detail := appCtx.Emissions.Rating(emission, km)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %.3f kg CO2 over %v km\n", label, emission, km)
			fmt.Fprintf(out, "Rating: %s (%s)\n", grade, detail)

			fp := appCtx.Emissions.Footprint(emission)
			fmt.Fprintf(out, "Equivalent to: %s tree-years, %s car miles, %s smartphone charges, %s light-bulb hours\n",
				formatFloat(fp.TreesNeeded), formatFloat(fp.CarMilesEquivalent),
				formatFloat(fp.SmartphoneCharges), formatFloat(fp.LightBulbHours))
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", domain.ModeDriving.String(), "transport mode: driving, transit, bicycling, walking")
	cmd.Flags().StringVar(&vehicle, "vehicle", "", "vehicle type from the catalogue (overrides --mode)")
	cmd.Flags().StringVar(&model, "model", "", "vehicle model (default: the type's average)")
	return cmd
}

func parseDistance(s string) (float64, error) {
	km, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing distance %q: %w", s, err)
	}
	return km, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
