package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func vehiclesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vehicles",
		Short: "List the vehicle catalogue with emission rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tMODEL\tNAME\tKG CO2/KM\tEXAMPLES")
			for _, v := range appCtx.Emissions.Vehicles() {
				rate := fmt.Sprintf("%.3f", v.RateKgPerKm)
				if v.PerPassenger {
					rate += " pp"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.Type, v.Model, v.Name, rate, v.Examples)
			}
			return tw.Flush()
		},
	}
}
