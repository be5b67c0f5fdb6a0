// Package config provides configuration management for lockctl.
//
// Configuration is resolved in three layers, later layers winning:
//
//   - Built-in defaults
//   - $LOCKABLE_CONFIG_PATH/lockable.yml (default /etc/lockable-resources)
//   - LOCKABLE_* environment variables
//
// # Key Configuration Options
//
//   - LOCKABLE_URL: Root of the lockable resources page
//   - LOCKABLE_USERNAME, LOCKABLE_API_TOKEN: Basic auth credentials
//   - LOCKABLE_LISTEN_ADDRESS: Session server listen address
//   - LOCKABLE_LOG_LEVEL: Logging verbosity
//   - LOCKABLE_AUDIT_ENABLED: Audit line output
//   - LOCKABLE_CRUMB_ENABLED: Anti-forgery crumb retrieval
//   - LOCKABLE_PERMISSIONS_FILE, LOCKABLE_RESOURCES_FILE: Local session inputs
package config
