package main

import (
	"os"

	"github.com/spf13/cobra"

	"finhealth/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:          "finctl",
	Short:        "Financial health engine tooling",
	Long:         "Apply database migrations and run what-if health simulations from TOML scenario files.",
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		logger.Sync()
	},
}

// Execute is the entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
