// Package grants produces the raw per-user permission set that seeds the
// action bar.
package grants

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/lockable-resources/pkg/permission"
)

// Source yields the raw permission set of the current user.
type Source interface {
	Grants(ctx context.Context) (permission.Grants, error)
}

// Static always yields the same grants.
type Static permission.Grants

func (s Static) Grants(context.Context) (permission.Grants, error) {
	out := make(permission.Grants, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out, nil
}

// File reads grants from a YAML or JSON document such as
//
//	UNLOCK: true
//	ADMINISTER: false
type File struct {
	Path string
}

func (f File) Grants(context.Context) (permission.Grants, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read permissions file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a grants document. Keys that are not capability names are
// rejected.
func Parse(data []byte) (permission.Grants, error) {
	var raw map[string]bool
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse permissions: %w", err)
	}

	out := make(permission.Grants, len(raw))
	for k, v := range raw {
		c, err := permission.CapabilityString(k)
		if err != nil {
			return nil, fmt.Errorf("unknown capability %q", k)
		}
		out[c.String()] = v
	}
	return out, nil
}
