package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/lockable-resources/pkg/audit"
	"github.com/doodlesbykumbi/lockable-resources/pkg/config"
	"github.com/doodlesbykumbi/lockable-resources/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "lockctl",
	Short: "Drive a lockable resources page session",
	Long: `Drive a lockable resources page session.

The action bar is computed from the user's permissions and the checked
resources, and row actions are submitted to the server as one request
per button press.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		log.Init(cfg.SlogLevel())
		audit.SetEnabled(cfg.IsAuditEnabled())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
