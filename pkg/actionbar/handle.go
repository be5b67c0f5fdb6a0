package actionbar

import "sync"

// Handle is an opaque reference to a rendered element.
type Handle interface {
	SetDisabled(disabled bool)
	SetHidden(hidden bool)
}

// Registry maps each button to its element. Buttons without an element are
// skipped when the bar is updated.
type Registry map[Button]Handle

// NoteLookup returns the note button element of a table row.
type NoteLookup func(resourceName string) (Handle, bool)

// Element is an in-memory Handle.
type Element struct {
	mu       sync.RWMutex
	disabled bool
	hidden   bool
}

func (e *Element) SetDisabled(disabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disabled = disabled
}

func (e *Element) SetHidden(hidden bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hidden = hidden
}

// Disabled reports the last value passed to SetDisabled.
func (e *Element) Disabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.disabled
}

// Hidden reports the last value passed to SetHidden.
func (e *Element) Hidden() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hidden
}

// NewRegistry returns a registry with an Element for every button the
// resources page renders. The page has no administer button.
func NewRegistry() Registry {
	registry := make(Registry)
	for _, b := range ButtonValues() {
		if b == ButtonAdminister {
			continue
		}
		registry[b] = &Element{}
	}
	return registry
}

// Element returns the in-memory element registered for b, if any.
func (r Registry) Element(b Button) (*Element, bool) {
	e, ok := r[b].(*Element)
	return e, ok
}

// NoteElements keeps one in-memory note button per resource row.
type NoteElements struct {
	mu       sync.Mutex
	elements map[string]*Element
}

// Lookup returns the note element for name, creating it on first use.
func (n *NoteElements) Lookup(name string) (Handle, bool) {
	return n.Element(name), true
}

// Element returns the note element for name, creating it on first use.
func (n *NoteElements) Element(name string) *Element {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.elements == nil {
		n.elements = make(map[string]*Element)
	}
	e, ok := n.elements[name]
	if !ok {
		e = &Element{}
		n.elements[name] = e
	}
	return e
}
