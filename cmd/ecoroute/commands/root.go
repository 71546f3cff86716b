package commands

import (
	"github.com/spf13/cobra"

	"ecoroute/internal/app"
)

var (
	configPath  string
	logLevel    string
	metricsFile string

	appCtx *app.Wire
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ecoroute",
		Short:        "Emissions, impact and input helpers for sustainable route finding",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if metricsFile != "" {
				cfg.MetricsFile = metricsFile
			}

			appCtx, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Close()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./"+app.DefaultConfigPath+" if present)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write prometheus metrics to this file on exit")

	root.AddCommand(
		impactCmd(),
		emissionCmd(),
		compareCmd(),
		validateCmd(),
		vehiclesCmd(),
		searchCmd(),
		shareCmd(),
	)
	return root
}
