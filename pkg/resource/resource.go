// Package resource holds the snapshots of lockable resources pushed in by
// the table rendering, keyed by resource name.
package resource

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Resource is the last rendered state of one table row.
type Resource struct {
	Name                    string `json:"resourceName" yaml:"resourceName"`
	IsLocked                bool   `json:"isLocked" yaml:"isLocked"`
	IsReserved              bool   `json:"isReserved" yaml:"isReserved"`
	IsQueued                bool   `json:"isQueued" yaml:"isQueued"`
	IsEphemeral             bool   `json:"isEphemeral" yaml:"isEphemeral"`
	IsReservedByCurrentUser bool   `json:"isReservedByCurrentUser" yaml:"isReservedByCurrentUser"`
}

// Free reports whether the resource is neither locked, reserved nor queued.
func (r Resource) Free() bool {
	return !r.IsLocked && !r.IsReserved && !r.IsQueued
}

// Cache stores the latest snapshot per resource name. The zero value is
// ready to use.
type Cache struct {
	snapshots map[string]Resource
}

// Record stores r, overwriting any earlier snapshot with the same name.
func (c *Cache) Record(r Resource) {
	if c.snapshots == nil {
		c.snapshots = make(map[string]Resource)
	}
	c.snapshots[r.Name] = r
}

// Get returns the snapshot cached for name.
func (c *Cache) Get(name string) (Resource, bool) {
	r, ok := c.snapshots[name]
	return r, ok
}

// Forget drops the snapshot cached for name.
func (c *Cache) Forget(name string) {
	delete(c.snapshots, name)
}

// Names returns the cached resource names, sorted.
func (c *Cache) Names() []string {
	names := make([]string, 0, len(c.snapshots))
	for name := range c.snapshots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of cached snapshots.
func (c *Cache) Len() int {
	return len(c.snapshots)
}

// Reset drops every cached snapshot.
func (c *Cache) Reset() {
	c.snapshots = nil
}

// LoadSnapshots decodes a YAML (or JSON) list of snapshots. Fields that
// are absent decode as false.
func LoadSnapshots(r io.Reader) ([]Resource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshots: %w", err)
	}

	var snapshots []Resource
	if err := yaml.Unmarshal(data, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to parse snapshots: %w", err)
	}

	for i, s := range snapshots {
		if s.Name == "" {
			return nil, fmt.Errorf("snapshot %d has no resourceName", i)
		}
	}
	return snapshots, nil
}
