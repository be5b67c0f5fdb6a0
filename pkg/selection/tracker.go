package selection

import (
	"log/slog"

	"github.com/doodlesbykumbi/lockable-resources/pkg/resource"
)

// Tracker combines the table's checkbox state with the snapshot cache.
type Tracker struct {
	source Source
	cache  resource.Cache
}

// NewTracker returns a tracker reading from source. A nil source behaves
// like a page without a resources table.
func NewTracker(source Source) *Tracker {
	return &Tracker{source: source}
}

// Selected returns the checked resource names in table order.
func (t *Tracker) Selected() []string {
	if t.source == nil {
		slog.Debug("resources table not found, selection is empty")
		return nil
	}
	return t.source.ListCheckedResourceNames()
}

// CurrentSelection returns the set of checked resource names.
func (t *Tracker) CurrentSelection() map[string]struct{} {
	names := t.Selected()
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Rows returns every row's resource name in table order.
func (t *Tracker) Rows() []string {
	if t.source == nil {
		slog.Debug("resources table not found, no rows")
		return nil
	}
	return t.source.ListResourceNames()
}

// Record stores the snapshot for r.Name, replacing any earlier one.
func (t *Tracker) Record(r resource.Resource) {
	t.cache.Record(r)
}

// Forget drops the cached snapshot for name.
func (t *Tracker) Forget(name string) {
	t.cache.Forget(name)
}

// Snapshot returns the cached snapshot for name.
func (t *Tracker) Snapshot(name string) (resource.Resource, bool) {
	return t.cache.Get(name)
}

// SelectedResources returns the cached snapshots of the checked rows in
// table order. Checked rows that were never recorded are skipped.
func (t *Tracker) SelectedResources() []resource.Resource {
	var out []resource.Resource
	for _, name := range t.Selected() {
		r, ok := t.cache.Get(name)
		if !ok {
			slog.Debug("no snapshot for selected resource", "resource", name)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Clear unchecks every row.
func (t *Tracker) Clear() {
	if t.source == nil {
		return
	}
	t.source.ClearSelection()
}

// Reset drops every cached snapshot.
func (t *Tracker) Reset() {
	t.cache.Reset()
}
