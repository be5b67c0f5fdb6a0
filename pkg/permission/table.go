package permission

// Table holds the effective permissions of one page session. The zero
// value grants nothing until Load is called.
type Table struct {
	effective Effective
	loaded    bool
}

// Load derives and caches the effective permissions for raw, replacing
// whatever a previous load stored.
func (t *Table) Load(raw Grants) Effective {
	t.effective = Derive(raw)
	t.loaded = true
	return t.Effective()
}

// Reset forgets the cached permissions.
func (t *Table) Reset() {
	t.effective = nil
	t.loaded = false
}

// Loaded reports whether Load has been called since the last Reset.
func (t *Table) Loaded() bool {
	return t.loaded
}

// Has reports whether c is effectively granted in the current session.
func (t *Table) Has(c Capability) bool {
	return t.effective.Has(c)
}

// Effective returns a copy of the cached permissions.
func (t *Table) Effective() Effective {
	out := make(Effective, len(t.effective))
	for c, v := range t.effective {
		out[c] = v
	}
	return out
}
