package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/lockable-resources/pkg/config"
	"github.com/doodlesbykumbi/lockable-resources/pkg/permission"
)

// permissionsDeriveCmd represents the permissions derive command
var permissionsDeriveCmd = &cobra.Command{
	Use:   "derive [CAPABILITY=true|false ...]",
	Short: "Show the effective permissions of a grants source",
	Long: `Show the raw and effective permissions of a grants source.

Grants are read from casbin (--casbin-model, --casbin-policy, --subject),
a grants file (--permissions or permissions_file) or the arguments.
Arguments override the source.

Example:
  lockctl permissions derive UNLOCK=true
  lockctl permissions derive --permissions grants.yml --output json`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		if err := derivePermissions(cmd, args, output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to derive permissions: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	permissionsCmd.AddCommand(permissionsDeriveCmd)
	addSessionFlags(permissionsDeriveCmd)
	permissionsDeriveCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

// parseGrantArgs reads CAPABILITY=bool pairs. A bare CAPABILITY means true.
func parseGrantArgs(args []string) (permission.Grants, error) {
	out := make(permission.Grants, len(args))
	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		c, err := permission.CapabilityString(name)
		if err != nil {
			return nil, fmt.Errorf("unknown capability %q", name)
		}
		switch {
		case !found, value == "true", value == "1":
			out[c.String()] = true
		case value == "false", value == "0":
			out[c.String()] = false
		default:
			return nil, fmt.Errorf("invalid value for %s: %q", name, value)
		}
	}
	return out, nil
}

func derivePermissions(cmd *cobra.Command, args []string, output string) error {
	raw, err := loadGrants(context.Background(), cmd, config.Get())
	if err != nil {
		return err
	}
	overrides, err := parseGrantArgs(args)
	if err != nil {
		return err
	}
	for k, v := range overrides {
		raw[k] = v
	}

	effective := permission.Derive(raw)
	if output == "json" {
		data, err := json.MarshalIndent(map[string]interface{}{
			"raw":       raw,
			"effective": effective.Names(),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(formatPermissions(raw, effective))
	return nil
}

func formatPermissions(raw permission.Grants, effective permission.Effective) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-12s %-8s %s\n", "CAPABILITY", "RAW", "EFFECTIVE"))
	sb.WriteString(fmt.Sprintf("%-12s %-8s %s\n", "----------", "---", "---------"))
	for _, c := range permission.CapabilityValues() {
		sb.WriteString(fmt.Sprintf("%-12s %-8t %t\n", c.String(), raw.Granted(c), effective.Has(c)))
	}
	return sb.String()
}
