package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/lockable-resources/pkg/config"
	"github.com/doodlesbykumbi/lockable-resources/pkg/grants"
	"github.com/doodlesbykumbi/lockable-resources/pkg/server"
)

// permissionsWatchCmd represents the permissions watch command
var permissionsWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a grants file and reload the action bar when it changes",
	Long: `Watch a grants file and rerun the permission load when it changes.

Each reload unchecks every row, exactly as a fresh permission load on the
page does, and prints the resulting action bar.

Example:
  lockctl permissions watch grants.yml --resources resources.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchPermissions(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch permissions: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	permissionsCmd.AddCommand(permissionsWatchCmd)
	permissionsWatchCmd.Flags().String("resources", "", "YAML or JSON list of resource snapshots (default: resources_file)")
}

func reloadPermissions(session *server.Session, filename string) error {
	raw, err := grants.File{Path: filename}.Grants(context.Background())
	if err != nil {
		return err
	}
	session.LoadPermissions(raw)
	return nil
}

func watchPermissions(cmd *cobra.Command, filename string) error {
	cfg := config.Get()
	snapshots, err := loadResources(flagOr(cmd, "resources", cfg.ResourcesFile))
	if err != nil {
		return err
	}

	session := server.NewSession(cfg.Username, nil, nil, nil)
	for _, r := range snapshots {
		session.PutResource(r)
	}
	if err := reloadPermissions(session, filename); err != nil {
		return err
	}
	fmt.Print(formatActionBar(session.ActionBar()))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for permission changes\n", filename)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, reloading permissions...\n", time.Now().Format(time.RFC3339))

				if err := reloadPermissions(session, filename); err != nil {
					fmt.Fprintf(os.Stderr, "Error loading permissions: %v\n", err)
					continue
				}
				fmt.Print(formatActionBar(session.ActionBar()))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}
