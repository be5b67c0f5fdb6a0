package selection

import "sync"

// Source reads the row checkboxes of the resources table.
type Source interface {
	// ListResourceNames returns every row's resource name in table order.
	ListResourceNames() []string
	// ListCheckedResourceNames returns the checked rows' names in table order.
	ListCheckedResourceNames() []string
	// ClearSelection unchecks every row.
	ClearSelection()
}

type row struct {
	name    string
	checked bool
}

// Table is an in-memory resources table. The header row is implicit, so
// row 0 of the rendered table is never part of the model. It is safe for
// concurrent use.
type Table struct {
	mu   sync.RWMutex
	rows []row
}

// NewTable returns a table with one unchecked row per name.
func NewTable(names ...string) *Table {
	t := &Table{}
	for _, name := range names {
		t.AddRow(name)
	}
	return t
}

func (t *Table) index(name string) int {
	for i, r := range t.rows {
		if r.name == name {
			return i
		}
	}
	return -1
}

// AddRow appends an unchecked row. Adding an existing name is a no-op.
func (t *Table) AddRow(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.index(name) >= 0 {
		return
	}
	t.rows = append(t.rows, row{name: name})
}

// RemoveRow drops the row for name.
func (t *Table) RemoveRow(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i := t.index(name); i >= 0 {
		t.rows = append(t.rows[:i], t.rows[i+1:]...)
	}
}

// SetChecked toggles the checkbox of the row for name. It reports false if
// no such row exists.
func (t *Table) SetChecked(name string, checked bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(name)
	if i < 0 {
		return false
	}
	t.rows[i].checked = checked
	return true
}

// Checked reports whether the row for name is checked.
func (t *Table) Checked(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i := t.index(name)
	return i >= 0 && t.rows[i].checked
}

func (t *Table) ListResourceNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.rows))
	for _, r := range t.rows {
		names = append(names, r.name)
	}
	return names
}

func (t *Table) ListCheckedResourceNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var names []string
	for _, r := range t.rows {
		if r.checked {
			names = append(names, r.name)
		}
	}
	return names
}

func (t *Table) ClearSelection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.rows {
		t.rows[i].checked = false
	}
}
