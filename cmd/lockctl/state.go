package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/lockable-resources/pkg/config"
)

// stateCmd represents the state command
var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the action bar for a selection",
	Long: `Show the action bar for a selection.

Nothing is sent to the server.

Example:
  lockctl state --resources resources.yml --permissions grants.yml --select lock-1
  lockctl state --select lock-1 --output json`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		if err := showState(cmd, output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to show state: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
	addSessionFlags(stateCmd)
	stateCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func showState(cmd *cobra.Command, output string) error {
	session, err := buildSession(context.Background(), cmd, config.Get(), nil, nil)
	if err != nil {
		return err
	}

	bar := session.ActionBar()
	if output == "json" {
		data, err := json.MarshalIndent(bar, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(formatActionBar(bar))
	return nil
}
