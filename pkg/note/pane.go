package note

import "sync"

// PaneState is the content stage of a Pane.
type PaneState string

const (
	PaneEmpty   PaneState = "empty"
	PaneLoading PaneState = "loading"
	PaneForm    PaneState = "form"
)

// Pane is an in-memory Container.
type Pane struct {
	mu         sync.RWMutex
	state      PaneState
	markup     string
	focus      string
	behaviours int
}

// PaneSnapshot is a point-in-time copy of a Pane.
type PaneSnapshot struct {
	State      PaneState `json:"state"`
	Markup     string    `json:"markup,omitempty"`
	Focus      string    `json:"focus,omitempty"`
	Behaviours int       `json:"behaviours"`
}

func (p *Pane) ShowLoading() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = PaneLoading
	p.markup = ""
	p.focus = ""
}

func (p *Pane) Replace(markup string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = PaneForm
	p.markup = markup
}

func (p *Pane) ApplyBehaviours() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.behaviours++
}

func (p *Pane) Focus(control string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.focus = control
}

// Snapshot copies the pane's current content.
func (p *Pane) Snapshot() PaneSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	state := p.state
	if state == "" {
		state = PaneEmpty
	}
	return PaneSnapshot{State: state, Markup: p.markup, Focus: p.focus, Behaviours: p.behaviours}
}
