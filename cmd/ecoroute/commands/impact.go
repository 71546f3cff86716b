package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// impact <kg>: trees and driving km equivalent to an emissions saving.
func impactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "impact <kg>",
		Short: "Convert kg of CO2 saved into trees and driving km",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kg, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parsing emission savings %q: %w", args[0], err)
			}

			imp := appCtx.Convert(kg)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Trees: %s\n", strconv.FormatFloat(imp.Trees, 'f', -1, 64))
			fmt.Fprintf(out, "Driving km: %s\n", imp.DrivingKm)
			return nil
		},
	}
}
