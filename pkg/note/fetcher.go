package note

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/doodlesbykumbi/lockable-resources/pkg/crumb"
)

// Fetcher loads the note form of a resource.
type Fetcher interface {
	FetchNoteForm(ctx context.Context, resourceName string) (string, error)
}

// HTTPFetcher posts resource=<name> to <root>/noteForm.
type HTTPFetcher struct {
	root     string
	client   *http.Client
	issuer   crumb.Issuer
	username string
	token    string
}

// NewHTTPFetcher returns a fetcher for the resources page at root. A nil
// client means http.DefaultClient; a nil issuer sends no crumb.
func NewHTTPFetcher(root string, client *http.Client, issuer crumb.Issuer) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if issuer == nil {
		issuer = crumb.None{}
	}
	return &HTTPFetcher{
		root:   strings.TrimSuffix(root, "/"),
		client: client,
		issuer: issuer,
	}
}

// WithBasicAuth sets the credentials sent with every request.
func (f *HTTPFetcher) WithBasicAuth(username, token string) *HTTPFetcher {
	f.username = username
	f.token = token
	return f
}

func (f *HTTPFetcher) FetchNoteForm(ctx context.Context, resourceName string) (string, error) {
	c, err := f.issuer.Crumb(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get crumb: %w", err)
	}

	form := url.Values{"resource": {resourceName}}
	c.AppendTo(form)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.root+"/noteForm", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if f.username != "" {
		req.SetBasicAuth(f.username, f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("noteForm returned %d", resp.StatusCode)
	}
	return string(body), nil
}
