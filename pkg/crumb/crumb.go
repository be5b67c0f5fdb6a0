// Package crumb supplies the anti-forgery token that must accompany every
// state-changing request to the resources page.
package crumb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// ErrNoCrumb is returned when the server does not hand out a crumb.
var ErrNoCrumb = errors.New("crumb issuer returned no crumb")

// Crumb is one anti-forgery field.
type Crumb struct {
	Field string `json:"crumbRequestField"`
	Value string `json:"crumb"`
}

// IsZero reports whether c carries no token.
func (c Crumb) IsZero() bool {
	return c.Field == "" || c.Value == ""
}

// AppendTo adds the crumb field to form. A zero crumb adds nothing.
func (c Crumb) AppendTo(form url.Values) {
	if c.IsZero() {
		return
	}
	form.Set(c.Field, c.Value)
}

// Issuer hands out crumbs.
type Issuer interface {
	Crumb(ctx context.Context) (Crumb, error)
}

// None is an Issuer for servers without CSRF protection.
type None struct{}

func (None) Crumb(context.Context) (Crumb, error) {
	return Crumb{}, nil
}

// JenkinsIssuer fetches the crumb from the server's crumb issuer endpoint
// once and reuses it for the rest of the session.
type JenkinsIssuer struct {
	root     string
	client   *http.Client
	username string
	token    string

	mu     sync.Mutex
	cached *Crumb
}

// NewJenkinsIssuer returns an issuer for the server rooted at root. A nil
// client means http.DefaultClient.
func NewJenkinsIssuer(root string, client *http.Client) *JenkinsIssuer {
	if client == nil {
		client = http.DefaultClient
	}
	return &JenkinsIssuer{
		root:   strings.TrimSuffix(root, "/"),
		client: client,
	}
}

// WithBasicAuth sets the credentials used to request the crumb. The crumb
// is bound to the session that requested it.
func (j *JenkinsIssuer) WithBasicAuth(username, token string) *JenkinsIssuer {
	j.username = username
	j.token = token
	return j
}

func (j *JenkinsIssuer) Crumb(ctx context.Context) (Crumb, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cached != nil {
		return *j.cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.root+"/crumbIssuer/api/json", nil)
	if err != nil {
		return Crumb{}, fmt.Errorf("failed to create crumb request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if j.username != "" {
		req.SetBasicAuth(j.username, j.token)
	}

	resp, err := j.client.Do(req)
	if err != nil {
		return Crumb{}, fmt.Errorf("failed to fetch crumb: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Crumb{}, fmt.Errorf("failed to read crumb response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Crumb{}, fmt.Errorf("crumb issuer returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var c Crumb
	if err := json.Unmarshal(body, &c); err != nil {
		return Crumb{}, fmt.Errorf("failed to parse crumb response: %w", err)
	}
	if c.IsZero() {
		return Crumb{}, ErrNoCrumb
	}

	j.cached = &c
	return c, nil
}

// Forget drops the cached crumb so the next call fetches a fresh one.
func (j *JenkinsIssuer) Forget() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.cached = nil
}
