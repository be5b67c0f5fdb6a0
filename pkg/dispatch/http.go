package dispatch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/doodlesbykumbi/lockable-resources/pkg/crumb"
)

// HTTPSubmitter posts requests as forms to <root>/<action>, with the
// anti-forgery crumb in the form body.
type HTTPSubmitter struct {
	root     string
	client   *http.Client
	issuer   crumb.Issuer
	username string
	token    string
}

// NewHTTPSubmitter returns a submitter for the resources page at root. A
// nil client means http.DefaultClient; a nil issuer sends no crumb.
func NewHTTPSubmitter(root string, client *http.Client, issuer crumb.Issuer) *HTTPSubmitter {
	if client == nil {
		client = http.DefaultClient
	}
	if issuer == nil {
		issuer = crumb.None{}
	}
	return &HTTPSubmitter{
		root:   strings.TrimSuffix(root, "/"),
		client: client,
		issuer: issuer,
	}
}

// WithBasicAuth sets the credentials sent with every request.
func (s *HTTPSubmitter) WithBasicAuth(username, token string) *HTTPSubmitter {
	s.username = username
	s.token = token
	return s
}

func (s *HTTPSubmitter) Submit(ctx context.Context, req Request) error {
	c, err := s.issuer.Crumb(ctx)
	if err != nil {
		return fmt.Errorf("failed to get crumb: %w", err)
	}

	form := url.Values{}
	c.AppendTo(form)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URL(s.root), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if s.username != "" {
		httpReq.SetBasicAuth(s.username, s.token)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s returned %d", req.Endpoint(), resp.StatusCode)
	}
	return nil
}
