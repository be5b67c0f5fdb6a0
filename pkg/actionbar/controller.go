package actionbar

import (
	"log/slog"

	"github.com/doodlesbykumbi/lockable-resources/pkg/permission"
	"github.com/doodlesbykumbi/lockable-resources/pkg/resource"
	"github.com/doodlesbykumbi/lockable-resources/pkg/rules"
	"github.com/doodlesbykumbi/lockable-resources/pkg/selection"
)

// Controller computes the action bar from the session's permissions and
// the current selection. It is not safe for concurrent use; callers run it
// from a single event loop.
type Controller struct {
	perms   *permission.Table
	tracker *selection.Tracker
	buttons Registry
	notes   NoteLookup

	states      map[Button]State
	noteVisible bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotes sets the lookup used to show or hide each row's note button.
func WithNotes(lookup NoteLookup) Option {
	return func(c *Controller) {
		c.notes = lookup
	}
}

// NewController returns a controller over the given session state. Every
// button reads as hidden until Load is called.
func NewController(perms *permission.Table, tracker *selection.Tracker, buttons Registry, opts ...Option) *Controller {
	c := &Controller{
		perms:   perms,
		tracker: tracker,
		buttons: buttons,
		states:  make(map[Button]State),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load is the permission-load call. It derives and caches the effective
// permissions, unchecks every row, sets each row's note visibility, hides
// the buttons that are not permitted and recomputes the rest.
func (c *Controller) Load(raw permission.Grants) permission.Effective {
	effective := c.perms.Load(raw)
	slog.Debug("initActionsBarButtons", "permissions", effective.Names())

	c.tracker.Clear()

	c.noteVisible = rules.CanEditNote(effective)
	for _, name := range c.tracker.Rows() {
		c.setNoteVisible(name, c.noteVisible)
	}

	for _, b := range ButtonValues() {
		if effective.Has(b.Capability()) {
			c.set(b, StateEnabled)
		} else {
			c.set(b, StateHidden)
		}
	}

	c.Refresh()
	return effective
}

// OnSelectionChange handles a checkbox toggle on the row of snapshot. The
// table is expected to already reflect the new checkbox state.
func (c *Controller) OnSelectionChange(snapshot resource.Resource, checked bool) {
	if !c.perms.Loaded() {
		slog.Debug("selection changed before permissions were loaded", "resource", snapshot.Name)
	}

	c.enablePermitted()
	c.tracker.Record(snapshot)

	perms := c.perms.Effective()
	if checked && c.gate(snapshot, perms) {
		return
	}
	c.gateSelection(perms)
}

// Refresh recomputes the bar from the current selection and cached snapshots.
func (c *Controller) Refresh() {
	c.enablePermitted()
	c.gateSelection(c.perms.Effective())
}

// RenderRow applies the note visibility of the last load to a row drawn
// after it and records the row's snapshot.
func (c *Controller) RenderRow(snapshot resource.Resource) {
	c.tracker.Record(snapshot)
	if c.perms.Loaded() {
		c.setNoteVisible(snapshot.Name, c.noteVisible)
	}
}

// State returns the current state of b.
func (c *Controller) State(b Button) State {
	s, ok := c.states[b]
	if !ok {
		return StateHidden
	}
	return s
}

// States returns the state of every button.
func (c *Controller) States() map[Button]State {
	out := make(map[Button]State, len(ButtonValues()))
	for _, b := range ButtonValues() {
		out[b] = c.State(b)
	}
	return out
}

// Enabled reports whether the button for a can currently be pressed.
func (c *Controller) Enabled(a rules.Action) bool {
	b, ok := ButtonFor(a)
	return ok && c.State(b) == StateEnabled
}

// NoteVisible reports whether note buttons are shown.
func (c *Controller) NoteVisible() bool {
	return c.noteVisible
}

// enablePermitted re-enables every button that is not hidden.
func (c *Controller) enablePermitted() {
	for _, b := range ButtonValues() {
		if c.State(b) != StateHidden {
			c.set(b, StateEnabled)
		}
	}
}

// gateSelection disables the row actions that are invalid for any selected
// resource, then disables everything when the selection is empty.
func (c *Controller) gateSelection(perms permission.Effective) {
	for _, r := range c.tracker.SelectedResources() {
		if c.gate(r, perms) {
			return
		}
	}

	if len(c.tracker.CurrentSelection()) == 0 {
		for _, b := range rowButtons {
			c.disable(b)
		}
		c.disable(ButtonEdit)
	}
}

// gate disables each row action that is invalid for r and reports whether
// all of them are now disabled.
func (c *Controller) gate(r resource.Resource, perms permission.Effective) bool {
	for _, b := range rowButtons {
		a, _ := b.Action()
		if !rules.Allowed(a, r, perms) {
			c.disable(b)
		}
	}
	return c.allRowsDisabled()
}

func (c *Controller) allRowsDisabled() bool {
	for _, b := range rowButtons {
		if c.State(b) == StateEnabled {
			return false
		}
	}
	return true
}

func (c *Controller) disable(b Button) {
	if c.State(b) == StateEnabled {
		c.set(b, StateDisabled)
	}
}

func (c *Controller) set(b Button, s State) {
	c.states[b] = s

	h, ok := c.buttons[b]
	if !ok || h == nil {
		slog.Debug("button element does not exist", "id", b.ElementID())
		return
	}
	h.SetHidden(s == StateHidden)
	h.SetDisabled(s != StateEnabled)
}

func (c *Controller) setNoteVisible(name string, visible bool) {
	if c.notes == nil {
		return
	}
	h, ok := c.notes(name)
	if !ok || h == nil {
		slog.Debug("note button does not exist", "id", "note-btn-"+name)
		return
	}
	h.SetHidden(!visible)
}
