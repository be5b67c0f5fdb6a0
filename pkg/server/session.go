package server

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/doodlesbykumbi/lockable-resources/pkg/actionbar"
	"github.com/doodlesbykumbi/lockable-resources/pkg/audit"
	"github.com/doodlesbykumbi/lockable-resources/pkg/dispatch"
	"github.com/doodlesbykumbi/lockable-resources/pkg/note"
	"github.com/doodlesbykumbi/lockable-resources/pkg/permission"
	"github.com/doodlesbykumbi/lockable-resources/pkg/resource"
	"github.com/doodlesbykumbi/lockable-resources/pkg/rules"
	"github.com/doodlesbykumbi/lockable-resources/pkg/selection"
)

var (
	ErrUnknownResource = errors.New("unknown resource")
	ErrActionDisabled  = errors.New("action is not enabled")
	ErrNoteHidden      = errors.New("note editing is not permitted")
)

// Session is one page session. Every method runs under the session lock,
// which plays the part of the page's single event loop.
type Session struct {
	mu   sync.Mutex
	user string

	table       *selection.Table
	tracker     *selection.Tracker
	permissions *permission.Table
	buttons     actionbar.Registry
	notes       *actionbar.NoteElements
	controller  *actionbar.Controller
	dispatcher  *dispatch.Dispatcher
	editor      *note.Editor
	panes       map[string]*note.Pane
}

// ActionBar is the rendered state of the bar.
type ActionBar struct {
	Buttons     map[string]string `json:"buttons"`
	NoteVisible bool              `json:"note_visible"`
	Selected    []string          `json:"selected"`
}

// NewSession wires a session around submitter and fetcher. runner may be nil.
func NewSession(user string, submitter dispatch.Submitter, fetcher note.Fetcher, runner note.ScriptRunner) *Session {
	s := &Session{
		user:        user,
		table:       selection.NewTable(),
		permissions: &permission.Table{},
		buttons:     actionbar.NewRegistry(),
		notes:       &actionbar.NoteElements{},
		panes:       make(map[string]*note.Pane),
	}
	s.tracker = selection.NewTracker(s.table)
	s.controller = actionbar.NewController(s.permissions, s.tracker, s.buttons, actionbar.WithNotes(s.notes.Lookup))
	s.dispatcher = dispatch.NewDispatcher(s.tracker, submitter).WithUser(user)
	s.editor = note.NewEditor(fetcher, s.pane, runner).WithUser(user)
	return s
}

// pane is called with the session lock held.
func (s *Session) pane(name string) (note.Container, bool) {
	p, ok := s.panes[name]
	return p, ok
}

// LoadPermissions is the permission-load call.
func (s *Session) LoadPermissions(raw permission.Grants) permission.Effective {
	s.mu.Lock()
	defer s.mu.Unlock()

	effective := s.controller.Load(raw)
	audit.Log(audit.PermissionsEvent{User: s.user, Granted: effective.Names()})
	return effective
}

// PutResource adds the row for r, or replaces its snapshot if it exists.
func (s *Session) PutResource(r resource.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.table.AddRow(r.Name)
	if _, ok := s.panes[r.Name]; !ok {
		s.panes[r.Name] = &note.Pane{}
	}
	s.controller.RenderRow(r)
	s.controller.Refresh()
}

// RemoveResource drops the row of name.
func (s *Session) RemoveResource(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tracker.Snapshot(name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownResource, name)
	}
	s.table.RemoveRow(name)
	s.tracker.Forget(name)
	delete(s.panes, name)
	s.controller.Refresh()
	return nil
}

// Select toggles the checkbox of name and notifies the controller.
func (s *Session) Select(name string, checked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, ok := s.tracker.Snapshot(name)
	if !ok || !s.table.SetChecked(name, checked) {
		return fmt.Errorf("%w: %s", ErrUnknownResource, name)
	}
	s.controller.OnSelectionChange(snapshot, checked)
	return nil
}

// ActionBar returns the current state of every button.
func (s *Session) ActionBar() ActionBar {
	s.mu.Lock()
	defer s.mu.Unlock()

	bar := ActionBar{
		Buttons:     make(map[string]string),
		NoteVisible: s.controller.NoteVisible(),
		Selected:    s.tracker.Selected(),
	}
	for b, state := range s.controller.States() {
		bar.Buttons[b.String()] = state.String()
	}
	if bar.Selected == nil {
		bar.Selected = []string{}
	}
	return bar
}

// Selection returns the cached snapshots of the checked rows.
func (s *Session) Selection() []resource.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := s.tracker.SelectedResources()
	if selected == nil {
		selected = []resource.Resource{}
	}
	return selected
}

// Press dispatches action as if its button were clicked and returns the
// names it was dispatched for. A button that is not enabled cannot be
// clicked.
func (s *Session) Press(ctx context.Context, action rules.Action) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !action.IsAAction() {
		return nil, fmt.Errorf("%w: %s", dispatch.ErrUnknownAction, action)
	}
	if !s.controller.Enabled(action) {
		return nil, fmt.Errorf("%w: %s", ErrActionDisabled, action)
	}
	names := s.tracker.Selected()
	if err := s.dispatcher.Dispatch(ctx, action); err != nil {
		return nil, err
	}
	return names, nil
}

// EditNote starts loading the note form of name.
func (s *Session) EditNote(ctx context.Context, name string) (*note.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.panes[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, name)
	}
	if !s.controller.NoteVisible() {
		return nil, ErrNoteHidden
	}
	return s.editor.Edit(ctx, name), nil
}

// Note returns the note pane of name.
func (s *Session) Note(name string) (note.PaneSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.panes[name]
	if !ok {
		return note.PaneSnapshot{}, fmt.Errorf("%w: %s", ErrUnknownResource, name)
	}
	return p.Snapshot(), nil
}
