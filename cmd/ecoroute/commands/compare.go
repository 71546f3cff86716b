package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ecoroute/internal/services/emissions"
	"ecoroute/internal/services/validation"
)

// compare <km>: every mode ranked, with savings against the baseline and
// their impact equivalents.
func compareCmd() *cobra.Command {
	var baseline string

	cmd := &cobra.Command{
		Use:   "compare <km>",
		Short: "Rank transport modes by emissions over a distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := parseDistance(args[0])
			if err != nil {
				return err
			}
			base, err := validation.TransportMode(baseline)
			if err != nil {
				return err
			}

			rows := appCtx.Emissions.Compare(km)
			baseKg, found := 0.0, false
			for _, row := range rows {
				if row.Mode == base {
					baseKg, found = row.EmissionKg, true
					break
				}
			}
			if !found {
				baseKg = appCtx.Emissions.Calculate(km, base)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MODE\tKG CO2\tKG/KM\tRATING\tSAVED\tTREES\tDRIVING KM")
			for _, row := range rows {
				saved := emissions.Saved(baseKg, row.EmissionKg)
				imp := appCtx.Convert(saved)
				fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%s\t%.3f\t%s\t%s\n",
					row.Mode, row.EmissionKg, row.EmissionKm, row.Grade, saved,
					strconv.FormatFloat(imp.Trees, 'f', -1, 64), imp.DrivingKm)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if len(rows) > 0 {
				best := rows[0].Mode
				info := appCtx.Emissions.ModeInfo(best)
				fmt.Fprintf(cmd.OutOrStdout(), "\nBest option: %s %s (%s)\n", info.Icon, info.Name, info.Benefits)
				for _, tip := range appCtx.Emissions.Tips(best) {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", tip)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseline, "baseline", "driving", "mode savings are measured against")
	return cmd
}
