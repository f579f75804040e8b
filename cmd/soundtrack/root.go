package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"readingsoundtrack/internal/app"
	"readingsoundtrack/internal/config"
	"readingsoundtrack/internal/logging"
)

var application *app.App

// rootCmd runs the recommendation pipeline from the terminal against the
// same catalogs and model the API server uses.
var rootCmd = &cobra.Command{
	Use:          "soundtrack",
	Short:        "Finds reading soundtracks for books",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logging.Init(logging.Config{Level: cfg.LogLevel, Format: "console"})
		if err := cfg.MissingError(); err != nil {
			return err
		}
		application = app.New(cfg)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
