package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecoroute/internal/services/validation"
)

func validateCmd() *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "validate <origin> <destination>",
		Short: "Check a route form as it would be checked on submit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := appCtx.Validator.RouteForm(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ok: %s -> %s\n", form.Origin, form.Destination)

			// a located origin arrives as coordinates alongside its label
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
				checkedLat, checkedLon, err := validation.Coordinates(lat, lon)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "origin at: %s, %s\n", formatFloat(checkedLat), formatFloat(checkedLon))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude of the origin")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude of the origin")
	return cmd
}
