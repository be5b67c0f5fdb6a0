package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/lockable-resources/pkg/actionbar"
	"github.com/doodlesbykumbi/lockable-resources/pkg/config"
	"github.com/doodlesbykumbi/lockable-resources/pkg/crumb"
	"github.com/doodlesbykumbi/lockable-resources/pkg/dispatch"
	"github.com/doodlesbykumbi/lockable-resources/pkg/grants"
	"github.com/doodlesbykumbi/lockable-resources/pkg/note"
	"github.com/doodlesbykumbi/lockable-resources/pkg/permission"
	"github.com/doodlesbykumbi/lockable-resources/pkg/resource"
	"github.com/doodlesbykumbi/lockable-resources/pkg/server"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

func newIssuer(cfg *config.Config) crumb.Issuer {
	if !cfg.IsCrumbEnabled() {
		return crumb.None{}
	}
	return crumb.NewJenkinsIssuer(jenkinsRoot(cfg.URL), httpClient).WithBasicAuth(cfg.Username, cfg.APIToken)
}

// jenkinsRoot strips the page path so the crumb issuer is found at the
// server root.
func jenkinsRoot(pageURL string) string {
	return strings.TrimSuffix(strings.TrimSuffix(pageURL, "/"), "/lockable-resources")
}

func newSubmitter(cfg *config.Config, issuer crumb.Issuer) *dispatch.HTTPSubmitter {
	return dispatch.NewHTTPSubmitter(cfg.URL, httpClient, issuer).WithBasicAuth(cfg.Username, cfg.APIToken)
}

func newFetcher(cfg *config.Config, issuer crumb.Issuer) *note.HTTPFetcher {
	return note.NewHTTPFetcher(cfg.URL, httpClient, issuer).WithBasicAuth(cfg.Username, cfg.APIToken)
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().String("resources", "", "YAML or JSON list of resource snapshots (default: resources_file)")
	cmd.Flags().String("permissions", "", "YAML or JSON grants document (default: permissions_file)")
	cmd.Flags().String("casbin-model", "", "casbin model file to derive grants from")
	cmd.Flags().String("casbin-policy", "", "casbin policy file to derive grants from")
	cmd.Flags().String("subject", "", "casbin subject (default: username)")
	cmd.Flags().StringArray("select", nil, "resource to check (repeatable)")
}

func flagOr(cmd *cobra.Command, name, fallback string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return fallback
}

// grantsSource picks casbin when a model is given, then a grants file, and
// otherwise grants nothing.
func grantsSource(cmd *cobra.Command, cfg *config.Config) (grants.Source, error) {
	if model := flagOr(cmd, "casbin-model", ""); model != "" {
		policy := flagOr(cmd, "casbin-policy", "")
		if policy == "" {
			return nil, fmt.Errorf("--casbin-policy is required with --casbin-model")
		}
		return grants.NewCasbin(model, policy, flagOr(cmd, "subject", cfg.Username))
	}
	if path := flagOr(cmd, "permissions", cfg.PermissionsFile); path != "" {
		return grants.File{Path: path}, nil
	}
	return grants.Static{}, nil
}

func loadGrants(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (permission.Grants, error) {
	source, err := grantsSource(cmd, cfg)
	if err != nil {
		return nil, err
	}
	return source.Grants(ctx)
}

func loadResources(path string) ([]resource.Resource, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open resources file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return resource.LoadSnapshots(f)
}

// buildSession renders the resources, runs the permission load and checks
// the selected rows, in that order.
func buildSession(ctx context.Context, cmd *cobra.Command, cfg *config.Config, submitter dispatch.Submitter, fetcher note.Fetcher) (*server.Session, error) {
	snapshots, err := loadResources(flagOr(cmd, "resources", cfg.ResourcesFile))
	if err != nil {
		return nil, err
	}
	raw, err := loadGrants(ctx, cmd, cfg)
	if err != nil {
		return nil, err
	}

	session := server.NewSession(cfg.Username, submitter, fetcher, nil)
	for _, r := range snapshots {
		session.PutResource(r)
	}
	session.LoadPermissions(raw)

	selected, _ := cmd.Flags().GetStringArray("select")
	for _, name := range selected {
		if err := session.Select(name, true); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func formatActionBar(bar server.ActionBar) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-12s %s\n", "BUTTON", "STATE"))
	sb.WriteString(fmt.Sprintf("%-12s %s\n", "------", "-----"))
	for _, b := range actionbar.ButtonValues() {
		sb.WriteString(fmt.Sprintf("%-12s %s\n", b.String(), bar.Buttons[b.String()]))
	}
	sb.WriteString(fmt.Sprintf("\nNote editing: %t\n", bar.NoteVisible))
	if len(bar.Selected) == 0 {
		sb.WriteString("Selected: (none)\n")
	} else {
		sb.WriteString(fmt.Sprintf("Selected: %s\n", strings.Join(bar.Selected, ", ")))
	}
	return sb.String()
}
