package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ecoroute/internal/domain"
	"ecoroute/internal/services/share"
)

// share [kg]: compose the share text, optionally with the impact of kg
// saved, and copy it to --clipboard-file or print it.
func shareCmd() *cobra.Command {
	var clipboardFile string

	cmd := &cobra.Command{
		Use:   "share [kg]",
		Short: "Compose route share text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kg float64
			if len(args) == 1 {
				v, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("parsing emission savings %q: %w", args[0], err)
				}
				kg = v
			}

			var clip domain.Clipboard
			if clipboardFile != "" {
				clip = share.FileClipboard{Path: clipboardFile}
			}

			copied, err := appCtx.NewShare(clip, cmd.OutOrStdout()).Share(cmd.Context(), kg)
			if err != nil {
				return err
			}
			if copied {
				fmt.Fprintln(cmd.OutOrStdout(), "Route information copied to clipboard!")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&clipboardFile, "clipboard-file", "", "file standing in for the clipboard")
	return cmd
}
