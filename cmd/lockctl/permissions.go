package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// permissionsCmd represents the permissions command
var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Inspect and reload permissions",
	Long:  `Inspect the effective permissions of a grants source and reload them on change.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'permissions' requires a subcommand (derive, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
}
