package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/lockable-resources/pkg/config"
	"github.com/doodlesbykumbi/lockable-resources/pkg/rules"
)

// dispatchCmd represents the dispatch command
var dispatchCmd = &cobra.Command{
	Use:       "dispatch <action>",
	Short:     "Press a row action button for the selected resources",
	ValidArgs: rules.ActionStrings(),
	Long: `Press a row action button for the selected resources.

The action must be enabled for the selection, exactly as the button on the
page would be. One request is sent for all selected resources.

Example:
  lockctl dispatch unlock --select lock-1 --select lock-2`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := dispatchAction(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to dispatch %s: %v\n", args[0], err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dispatchCmd)
	addSessionFlags(dispatchCmd)
}

func dispatchAction(cmd *cobra.Command, name string) error {
	action, err := rules.ActionString(name)
	if err != nil {
		return err
	}

	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	session, err := buildSession(ctx, cmd, cfg, newSubmitter(cfg, newIssuer(cfg)), nil)
	if err != nil {
		return err
	}

	selected, err := session.Press(ctx, action)
	if err != nil {
		return err
	}
	fmt.Printf("Dispatched %s for %d resource(s)\n", action, len(selected))
	return nil
}
