package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{
		"LOCKABLE_URL", "LOCKABLE_USERNAME", "LOCKABLE_API_TOKEN", "LOCKABLE_LISTEN_ADDRESS",
		"LOCKABLE_LOG_LEVEL", "LOCKABLE_AUDIT_ENABLED", "LOCKABLE_CRUMB_ENABLED",
		"LOCKABLE_PERMISSIONS_FILE", "LOCKABLE_RESOURCES_FILE",
	} {
		t.Setenv(env, "")
	}
	t.Setenv("LOCKABLE_CONFIG_PATH", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultURL, cfg.URL)
	assert.Equal(t, DefaultListenAddress, cfg.ListenAddress)
	assert.True(t, cfg.IsAuditEnabled())
	assert.True(t, cfg.IsCrumbEnabled())
	assert.Equal(t, "default", cfg.Source("url"))
	assert.Equal(t, "default", cfg.Source("unknown"))
	require.NoError(t, cfg.Validate())
}

func TestLoadFileAndEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("LOCKABLE_CONFIG_PATH", dir)

	yml := "url: https://ci.example.com/lockable-resources\n" +
		"username: alice\n" +
		"log_level: debug\n" +
		"crumb_enabled: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yml), 0o600))

	t.Setenv("LOCKABLE_LOG_LEVEL", "warn")
	t.Setenv("LOCKABLE_AUDIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ConfigFileName), cfg.ConfigFilePath())
	assert.Equal(t, "https://ci.example.com/lockable-resources", cfg.URL)
	assert.Equal(t, "file", cfg.Source("url"))
	assert.Equal(t, "alice", cfg.Username)
	assert.False(t, cfg.IsCrumbEnabled())
	assert.Equal(t, "file", cfg.Source("crumb_enabled"))

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "environment", cfg.Source("log_level"))
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	assert.False(t, cfg.IsAuditEnabled())
	assert.Equal(t, "environment", cfg.Source("audit_enabled"))
}

func TestLoadInvalidFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("LOCKABLE_CONFIG_PATH", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("url: [\n"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"relative url", func(c *Config) { c.URL = "/lockable-resources" }, "invalid url value"},
		{"bad scheme", func(c *Config) { c.URL = "ftp://ci/lockable-resources" }, "invalid url scheme"},
		{"bad listen address", func(c *Config) { c.ListenAddress = "8090" }, "invalid listen_address"},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "invalid log_level"},
		{"token without user", func(c *Config) { c.APIToken = "secret" }, "api_token requires username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFormat(t *testing.T) {
	cfg := newDefault()
	cfg.Username = "alice"
	cfg.APIToken = "secret"

	text := cfg.FormatText()
	assert.Contains(t, text, "NAME")
	assert.Contains(t, text, "********")
	assert.NotContains(t, text, "secret")
	assert.Contains(t, text, "(not set)")

	out, err := cfg.FormatJSON()
	require.NoError(t, err)
	var decoded struct {
		Attributes []Attribute `json:"attributes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded.Attributes, len(attributeNames()))
}
