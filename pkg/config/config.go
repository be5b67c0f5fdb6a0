package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath    = "/etc/lockable-resources"
	ConfigFileName       = "lockable.yml"
	DefaultURL           = "http://localhost:8080/lockable-resources"
	DefaultListenAddress = "127.0.0.1:8090"
	DefaultLogLevel      = "info"
)

// ValidLogLevels is the list of accepted log_level values
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all lockable-resources client and session settings
type Config struct {
	// URL is the root of the lockable resources page
	URL string `yaml:"url" json:"url"`

	// Username is sent with basic auth on every request
	Username string `yaml:"username" json:"username"`

	// APIToken is the basic auth password
	APIToken string `yaml:"api_token" json:"api_token"`

	// ListenAddress is where the session server listens
	ListenAddress string `yaml:"listen_address" json:"listen_address"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level" json:"log_level"`

	// AuditEnabled toggles RFC5424 audit lines
	AuditEnabled *bool `yaml:"audit_enabled" json:"audit_enabled"`

	// CrumbEnabled fetches an anti-forgery crumb before state-changing requests
	CrumbEnabled *bool `yaml:"crumb_enabled" json:"crumb_enabled"`

	// PermissionsFile is a YAML or JSON grants document
	PermissionsFile string `yaml:"permissions_file" json:"permissions_file"`

	// ResourcesFile is a YAML or JSON list of resource snapshots
	ResourcesFile string `yaml:"resources_file" json:"resources_file"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			slog.Warn("failed to load configuration, using defaults", "error", err)
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}

func newDefault() *Config {
	return &Config{
		URL:           DefaultURL,
		ListenAddress: DefaultListenAddress,
		LogLevel:      DefaultLogLevel,
		AuditEnabled:  boolPtr(true),
		CrumbEnabled:  boolPtr(true),
		sources:       make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("LOCKABLE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"url", "username", "api_token", "listen_address", "log_level",
		"audit_enabled", "crumb_enabled", "permissions_file", "resources_file",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	setString := func(name string, dst *string, val string) {
		if val != "" {
			*dst = val
			c.sources[name] = "file"
		}
	}
	setString("url", &c.URL, file.URL)
	setString("username", &c.Username, file.Username)
	setString("api_token", &c.APIToken, file.APIToken)
	setString("listen_address", &c.ListenAddress, file.ListenAddress)
	setString("log_level", &c.LogLevel, file.LogLevel)
	setString("permissions_file", &c.PermissionsFile, file.PermissionsFile)
	setString("resources_file", &c.ResourcesFile, file.ResourcesFile)

	if file.AuditEnabled != nil {
		c.AuditEnabled = boolPtr(*file.AuditEnabled)
		c.sources["audit_enabled"] = "file"
	}
	if file.CrumbEnabled != nil {
		c.CrumbEnabled = boolPtr(*file.CrumbEnabled)
		c.sources["crumb_enabled"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	setString := func(name, env string, dst *string) {
		if val := os.Getenv(env); val != "" {
			*dst = val
			c.sources[name] = "environment"
		}
	}
	setString("url", "LOCKABLE_URL", &c.URL)
	setString("username", "LOCKABLE_USERNAME", &c.Username)
	setString("api_token", "LOCKABLE_API_TOKEN", &c.APIToken)
	setString("listen_address", "LOCKABLE_LISTEN_ADDRESS", &c.ListenAddress)
	setString("log_level", "LOCKABLE_LOG_LEVEL", &c.LogLevel)
	setString("permissions_file", "LOCKABLE_PERMISSIONS_FILE", &c.PermissionsFile)
	setString("resources_file", "LOCKABLE_RESOURCES_FILE", &c.ResourcesFile)

	if val := os.Getenv("LOCKABLE_AUDIT_ENABLED"); val != "" {
		c.AuditEnabled = boolPtr(parseBool(val))
		c.sources["audit_enabled"] = "environment"
	}
	if val := os.Getenv("LOCKABLE_CRUMB_ENABLED"); val != "" {
		c.CrumbEnabled = boolPtr(parseBool(val))
		c.sources["crumb_enabled"] = "environment"
	}
}

func parseBool(val string) bool {
	return val == "true" || val == "1"
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// IsAuditEnabled reports whether audit lines are written. Unset means on.
func (c *Config) IsAuditEnabled() bool {
	return c.AuditEnabled == nil || *c.AuditEnabled
}

// IsCrumbEnabled reports whether a crumb is fetched. Unset means on.
func (c *Config) IsCrumbEnabled() bool {
	return c.CrumbEnabled == nil || *c.CrumbEnabled
}

// SlogLevel maps LogLevel onto slog. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Validate validates the configuration
func (c *Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid url value: %s", c.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url scheme: %s", u.Scheme)
	}

	if _, _, err := net.SplitHostPort(c.ListenAddress); err != nil {
		return fmt.Errorf("invalid listen_address value: %s", c.ListenAddress)
	}

	valid := false
	for _, l := range ValidLogLevels {
		if strings.EqualFold(l, c.LogLevel) {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log_level value: %s", c.LogLevel)
	}

	if c.APIToken != "" && c.Username == "" {
		return fmt.Errorf("api_token requires username")
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	token := ""
	if c.APIToken != "" {
		token = "********"
	}
	return []Attribute{
		{Name: "url", Value: c.URL, Source: c.Source("url")},
		{Name: "username", Value: c.Username, Source: c.Source("username")},
		{Name: "api_token", Value: token, Source: c.Source("api_token")},
		{Name: "listen_address", Value: c.ListenAddress, Source: c.Source("listen_address")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "audit_enabled", Value: strconv.FormatBool(c.IsAuditEnabled()), Source: c.Source("audit_enabled")},
		{Name: "crumb_enabled", Value: strconv.FormatBool(c.IsCrumbEnabled()), Source: c.Source("crumb_enabled")},
		{Name: "permissions_file", Value: c.PermissionsFile, Source: c.Source("permissions_file")},
		{Name: "resources_file", Value: c.ResourcesFile, Source: c.Source("resources_file")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-45s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-45s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-45s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
