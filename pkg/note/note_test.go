package note

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/lockable-resources/pkg/crumb"
)

type fakeContainer struct {
	mu    sync.Mutex
	calls []string
	html  string
	focus string
}

func (c *fakeContainer) record(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

func (c *fakeContainer) ShowLoading() { c.record("loading") }

func (c *fakeContainer) Replace(markup string) {
	c.record("replace")
	c.mu.Lock()
	c.html = markup
	c.mu.Unlock()
}

func (c *fakeContainer) ApplyBehaviours() { c.record("behaviours") }

func (c *fakeContainer) Focus(control string) {
	c.record("focus")
	c.mu.Lock()
	c.focus = control
	c.mu.Unlock()
}

func (c *fakeContainer) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// gatedFetcher blocks each fetch until its gate is released.
type gatedFetcher struct {
	mu    sync.Mutex
	gates []chan string
	calls chan struct{}
}

func newGatedFetcher() *gatedFetcher {
	return &gatedFetcher{calls: make(chan struct{}, 8)}
}

func (f *gatedFetcher) FetchNoteForm(ctx context.Context, _ string) (string, error) {
	gate := make(chan string, 1)
	f.mu.Lock()
	f.gates = append(f.gates, gate)
	f.mu.Unlock()
	f.calls <- struct{}{}

	select {
	case markup := <-gate:
		return markup, nil
	case <-ctx.Done():
		// Deliver late so the editor sees a successful fetch after cancel.
		return <-gate, nil
	}
}

func (f *gatedFetcher) release(i int, markup string) {
	f.mu.Lock()
	gate := f.gates[i]
	f.mu.Unlock()
	gate <- markup
}

type failingFetcher struct{ err error }

func (f failingFetcher) FetchNoteForm(context.Context, string) (string, error) {
	return "", f.err
}

type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, s Script) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func lookup(containers map[string]*fakeContainer) ContainerLookup {
	return func(name string) (Container, bool) {
		c, ok := containers[name]
		return c, ok
	}
}

func waitTask(t *testing.T, task *Task) error {
	t.Helper()
	select {
	case <-task.Done():
		return task.Wait()
	case <-time.After(5 * time.Second):
		t.Fatal("note task did not finish")
		return nil
	}
}

const form = `<form><script src="/adjuncts/note.js"></script>` +
	`<script>init()</script><input type="hidden" name="resource" value="lock-1">` +
	`<textarea name="note"></textarea></form>`

func TestParseFragment(t *testing.T) {
	f, err := ParseFragment(form)
	require.NoError(t, err)

	assert.Equal(t, form, f.Markup)
	assert.Equal(t, []Script{{Src: "/adjuncts/note.js"}, {Body: "init()"}}, f.Scripts)
	assert.Equal(t, "note", f.TextInput)
}

func TestParseFragmentTextInput(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{"input by id", `<input id="n1" name="note">`, "n1"},
		{"default type", `<div><input name="note"></div>`, "note"},
		{"checkbox skipped", `<input type="checkbox" name="c"><input type="TEXT" name="t">`, "t"},
		{"anonymous textarea", `<textarea></textarea>`, "textarea"},
		{"none", `<p>nothing here</p>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFragment(tt.markup)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.TextInput)
		})
	}
}

func TestEdit(t *testing.T) {
	fetcher := newGatedFetcher()
	c := &fakeContainer{}
	runner := &MockRunner{}
	runner.On("Run", mock.Anything, Script{Src: "/adjuncts/note.js"}).Return(nil)
	runner.On("Run", mock.Anything, Script{Body: "init()"}).Return(errors.New("boom"))

	editor := NewEditor(fetcher, lookup(map[string]*fakeContainer{"lock-1": c}), runner)
	task := editor.Edit(context.Background(), "lock-1")

	<-fetcher.calls
	assert.Equal(t, []string{"loading"}, c.Calls())
	assert.True(t, editor.Pending("lock-1"))

	fetcher.release(0, form)
	require.NoError(t, waitTask(t, task))

	assert.Equal(t, []string{"loading", "replace", "behaviours", "focus"}, c.Calls())
	assert.Equal(t, form, c.html)
	assert.Equal(t, "note", c.focus)
	assert.False(t, editor.Pending("lock-1"))
	runner.AssertExpectations(t)
}

func TestEditWithoutTextInput(t *testing.T) {
	fetcher := newGatedFetcher()
	c := &fakeContainer{}
	editor := NewEditor(fetcher, lookup(map[string]*fakeContainer{"lock-1": c}), nil)

	task := editor.Edit(context.Background(), "lock-1")
	<-fetcher.calls
	fetcher.release(0, "<p>read only</p>")
	require.NoError(t, waitTask(t, task))

	assert.Equal(t, []string{"loading", "replace", "behaviours"}, c.Calls())
}

func TestEditFailureKeepsPlaceholder(t *testing.T) {
	c := &fakeContainer{}
	editor := NewEditor(failingFetcher{err: errors.New("503")}, lookup(map[string]*fakeContainer{"lock-1": c}), nil)

	err := waitTask(t, editor.Edit(context.Background(), "lock-1"))
	require.Error(t, err)
	assert.Equal(t, []string{"loading"}, c.Calls())
	assert.False(t, editor.Pending("lock-1"))
}

func TestEditWithoutContainer(t *testing.T) {
	editor := NewEditor(newGatedFetcher(), lookup(nil), nil)

	err := waitTask(t, editor.Edit(context.Background(), "missing"))
	assert.ErrorIs(t, err, ErrNoContainer)
}

func TestEditCancelsEarlierTask(t *testing.T) {
	fetcher := newGatedFetcher()
	c := &fakeContainer{}
	editor := NewEditor(fetcher, lookup(map[string]*fakeContainer{"lock-1": c}), nil)

	first := editor.Edit(context.Background(), "lock-1")
	<-fetcher.calls
	second := editor.Edit(context.Background(), "lock-1")
	<-fetcher.calls

	fetcher.release(0, `<textarea name="stale"></textarea>`)
	assert.ErrorIs(t, waitTask(t, first), context.Canceled)
	assert.Equal(t, []string{"loading", "loading"}, c.Calls())
	assert.True(t, editor.Pending("lock-1"))

	fetcher.release(1, `<textarea name="fresh"></textarea>`)
	require.NoError(t, waitTask(t, second))
	assert.Equal(t, "fresh", c.focus)
	assert.Equal(t, []string{"loading", "loading", "replace", "behaviours", "focus"}, c.Calls())
}

func TestEditIndependentResources(t *testing.T) {
	fetcher := newGatedFetcher()
	a, b := &fakeContainer{}, &fakeContainer{}
	editor := NewEditor(fetcher, lookup(map[string]*fakeContainer{"a": a, "b": b}), nil)

	ta := editor.Edit(context.Background(), "a")
	<-fetcher.calls
	tb := editor.Edit(context.Background(), "b")
	<-fetcher.calls

	fetcher.release(1, "<p>b</p>")
	fetcher.release(0, "<p>a</p>")
	require.NoError(t, waitTask(t, ta))
	require.NoError(t, waitTask(t, tb))

	assert.Equal(t, "<p>a</p>", a.html)
	assert.Equal(t, "<p>b</p>", b.html)
}

func TestCancelledTask(t *testing.T) {
	fetcher := newGatedFetcher()
	c := &fakeContainer{}
	editor := NewEditor(fetcher, lookup(map[string]*fakeContainer{"lock-1": c}), nil)

	task := editor.Edit(context.Background(), "lock-1")
	<-fetcher.calls
	task.Cancel()
	fetcher.release(0, "<p>late</p>")

	assert.ErrorIs(t, waitTask(t, task), context.Canceled)
	assert.Equal(t, []string{"loading"}, c.Calls())
	assert.False(t, editor.Pending("lock-1"))
}

func TestCallerCancelClearsPending(t *testing.T) {
	fetcher := newGatedFetcher()
	c := &fakeContainer{}
	editor := NewEditor(fetcher, lookup(map[string]*fakeContainer{"lock-1": c}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	task := editor.Edit(ctx, "lock-1")
	<-fetcher.calls
	assert.True(t, editor.Pending("lock-1"))

	cancel()
	fetcher.release(0, `<textarea name="note"></textarea>`)

	assert.ErrorIs(t, waitTask(t, task), context.Canceled)
	assert.Equal(t, []string{"loading"}, c.Calls())
	assert.False(t, editor.Pending("lock-1"))
}

func TestHTTPFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/lockable-resources/noteForm", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "alice", user)
		assert.Equal(t, "token", pass)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		values, err := url.ParseQuery(string(body))
		require.NoError(t, err)
		assert.Equal(t, "lock 1", values.Get("resource"))
		assert.Equal(t, "abc", values.Get("Jenkins-Crumb"))

		_, _ = w.Write([]byte(form))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(server.URL+"/lockable-resources/", nil, staticIssuer{crumb.Crumb{Field: "Jenkins-Crumb", Value: "abc"}}).
		WithBasicAuth("alice", "token")

	markup, err := fetcher.FetchNoteForm(context.Background(), "lock 1")
	require.NoError(t, err)
	assert.Equal(t, form, markup)
}

func TestHTTPFetcherStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewHTTPFetcher(server.URL, server.Client(), nil).FetchNoteForm(context.Background(), "lock-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

type staticIssuer struct{ c crumb.Crumb }

func (s staticIssuer) Crumb(context.Context) (crumb.Crumb, error) { return s.c, nil }

func TestPane(t *testing.T) {
	p := &Pane{}
	assert.Equal(t, PaneSnapshot{State: PaneEmpty}, p.Snapshot())

	fetcher := newGatedFetcher()
	editor := NewEditor(fetcher, func(string) (Container, bool) { return p, true }, nil)
	task := editor.Edit(context.Background(), "lock-1")
	<-fetcher.calls
	assert.Equal(t, PaneLoading, p.Snapshot().State)

	fetcher.release(0, `<textarea id="note-text"></textarea>`)
	require.NoError(t, waitTask(t, task))
	assert.Equal(t, PaneSnapshot{
		State:      PaneForm,
		Markup:     `<textarea id="note-text"></textarea>`,
		Focus:      "note-text",
		Behaviours: 1,
	}, p.Snapshot())
}
