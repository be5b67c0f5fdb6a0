package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/lockable-resources/pkg/config"
	"github.com/doodlesbykumbi/lockable-resources/pkg/note"
)

// noteCmd represents the note command
var noteCmd = &cobra.Command{
	Use:   "note <resource>",
	Short: "Load the note edit form of a resource",
	Long: `Load the note edit form of a resource and print it.

With --summary only the form's scripts and the control that would receive
focus are printed.

Example:
  lockctl note lock-1
  lockctl note lock-1 --summary`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		summary, _ := cmd.Flags().GetBool("summary")

		if err := showNote(args[0], summary); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load note: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.Flags().Bool("summary", false, "print scripts and focus control instead of markup")
}

func showNote(name string, summary bool) error {
	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		return err
	}

	pane := &note.Pane{}
	editor := note.NewEditor(newFetcher(cfg, newIssuer(cfg)), func(string) (note.Container, bool) {
		return pane, true
	}, nil).WithUser(cfg.Username)

	if err := editor.Edit(context.Background(), name).Wait(); err != nil {
		return err
	}

	snapshot := pane.Snapshot()
	if !summary {
		fmt.Println(snapshot.Markup)
		return nil
	}

	fragment, err := note.ParseFragment(snapshot.Markup)
	if err != nil {
		return err
	}
	for _, s := range fragment.Scripts {
		if s.Src != "" {
			fmt.Printf("script: %s\n", s.Src)
		} else {
			fmt.Printf("script: inline (%d bytes)\n", len(s.Body))
		}
	}
	if fragment.TextInput == "" {
		fmt.Println("focus: (none)")
	} else {
		fmt.Printf("focus: %s\n", fragment.TextInput)
	}
	return nil
}
