package crumb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJenkinsIssuer(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/crumbIssuer/api/json", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "alice", user)
		assert.Equal(t, "secret", pass)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_class":"hudson.security.csrf.DefaultCrumbIssuer","crumb":"abc123","crumbRequestField":"Jenkins-Crumb"}`))
	}))
	defer srv.Close()

	issuer := NewJenkinsIssuer(srv.URL+"/", nil).WithBasicAuth("alice", "secret")

	c, err := issuer.Crumb(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Crumb{Field: "Jenkins-Crumb", Value: "abc123"}, c)

	// cached for the session
	_, err = issuer.Crumb(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	issuer.Forget()
	_, err = issuer.Crumb(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestJenkinsIssuer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "not found", status: http.StatusNotFound, body: "no issuer", wantErr: "crumb issuer returned 404: no issuer"},
		{name: "malformed", status: http.StatusOK, body: "{", wantErr: "failed to parse crumb response"},
		{name: "empty", status: http.StatusOK, body: `{"crumb":""}`, wantErr: ErrNoCrumb.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewJenkinsIssuer(srv.URL, srv.Client()).Crumb(context.Background())
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCrumb_AppendTo(t *testing.T) {
	form := url.Values{}
	Crumb{}.AppendTo(form)
	assert.Empty(t, form)

	Crumb{Field: "Jenkins-Crumb", Value: "abc"}.AppendTo(form)
	assert.Equal(t, "abc", form.Get("Jenkins-Crumb"))

	c, err := None{}.Crumb(context.Background())
	require.NoError(t, err)
	assert.True(t, c.IsZero())
}
