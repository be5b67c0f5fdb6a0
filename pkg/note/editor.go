package note

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/doodlesbykumbi/lockable-resources/pkg/audit"
)

// ErrNoContainer is reported when a resource row has no note container.
var ErrNoContainer = errors.New("no note container")

// Container is the note area of a single resource row.
type Container interface {
	ShowLoading()
	Replace(markup string)
	ApplyBehaviours()
	Focus(control string)
}

// ScriptRunner evaluates the initialisation scripts of a note form.
type ScriptRunner interface {
	Run(ctx context.Context, script Script) error
}

// ContainerLookup finds the note container of a resource.
type ContainerLookup func(resourceName string) (Container, bool)

// Task is one in-flight note fetch.
type Task struct {
	resource string
	cancel   context.CancelFunc
	done     chan struct{}
	err      error
}

func finished(resource string, err error) *Task {
	t := &Task{resource: resource, cancel: func() {}, done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

// Resource names the resource the task edits.
func (t *Task) Resource() string { return t.resource }

// Done is closed once the task has finished or been abandoned.
func (t *Task) Done() <-chan struct{} { return t.done }

// Cancel abandons the task. A cancelled task never writes to its container.
func (t *Task) Cancel() { t.cancel() }

// Wait blocks until the task is done and returns its outcome.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Editor runs note edits, keeping at most one task per resource.
type Editor struct {
	fetcher    Fetcher
	containers ContainerLookup
	runner     ScriptRunner
	user       string

	mu    sync.Mutex
	tasks map[string]*Task
}

// NewEditor returns an editor. A nil runner skips form scripts.
func NewEditor(fetcher Fetcher, containers ContainerLookup, runner ScriptRunner) *Editor {
	return &Editor{
		fetcher:    fetcher,
		containers: containers,
		runner:     runner,
		tasks:      make(map[string]*Task),
	}
}

// WithUser names the acting user in audit events.
func (e *Editor) WithUser(user string) *Editor {
	e.user = user
	return e
}

// Pending reports whether a fetch for resourceName is in flight.
func (e *Editor) Pending(resourceName string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.tasks[resourceName]
	return ok
}

// Edit starts loading the note form of resourceName and returns at once.
// An earlier task for the same resource is cancelled.
func (e *Editor) Edit(ctx context.Context, resourceName string) *Task {
	container, ok := e.containers(resourceName)
	if !ok {
		slog.DebugContext(ctx, "no note container", "resource", resourceName)
		return finished(resourceName, fmt.Errorf("%w for %s", ErrNoContainer, resourceName))
	}

	ctx, cancel := context.WithCancel(ctx)
	task := &Task{resource: resourceName, cancel: cancel, done: make(chan struct{})}

	e.mu.Lock()
	if prev, ok := e.tasks[resourceName]; ok {
		slog.DebugContext(ctx, "replacing pending note fetch", "resource", resourceName)
		prev.Cancel()
	}
	e.tasks[resourceName] = task
	container.ShowLoading()
	e.mu.Unlock()

	go e.run(ctx, task, container)
	return task
}

func (e *Editor) run(ctx context.Context, task *Task, container Container) {
	defer close(task.done)
	defer task.cancel()

	markup, err := e.fetcher.FetchNoteForm(ctx, task.resource)
	if err == nil {
		err = e.apply(ctx, task, container, markup)
	} else {
		e.release(task)
	}
	task.err = err

	if errors.Is(err, context.Canceled) {
		slog.DebugContext(ctx, "note fetch cancelled", "resource", task.resource)
		return
	}

	event := audit.NoteEvent{User: e.user, Resource: task.resource, Success: err == nil}
	if err != nil {
		event.ErrorMessage = err.Error()
		slog.Warn("failed to load note form", "resource", task.resource, "error", err)
	}
	audit.Log(event)
}

// apply writes the form into the container unless the task was cancelled
// in the meantime. The check and the writes share the editor lock so a
// newer Edit cannot interleave with them.
func (e *Editor) apply(ctx context.Context, task *Task, container Container, markup string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tasks[task.resource] == task {
		delete(e.tasks, task.resource)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fragment, err := ParseFragment(markup)
	if err != nil {
		return err
	}

	container.Replace(fragment.Markup)
	if e.runner != nil {
		for _, s := range fragment.Scripts {
			if err := e.runner.Run(ctx, s); err != nil {
				slog.Debug("note form script failed", "resource", task.resource, "src", s.Src, "error", err)
			}
		}
	}
	container.ApplyBehaviours()

	if fragment.TextInput == "" {
		slog.Debug("note form has no text input", "resource", task.resource)
		return nil
	}
	container.Focus(fragment.TextInput)
	return nil
}

func (e *Editor) release(task *Task) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.tasks[task.resource] == task {
		delete(e.tasks, task.resource)
	}
}
