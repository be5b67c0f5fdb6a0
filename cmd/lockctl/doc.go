// Command lockctl drives a headless lockable resources page session.
//
// The session holds the resources table, derives the action bar from the
// user's permissions and the checked rows, dispatches row actions to the
// server and loads note edit forms.
//
// # Quick Start
//
//	# Show the raw and effective permissions from a grants file
//	lockctl permissions derive --permissions grants.yml
//
//	# Compute the action bar for a selection
//	lockctl state --resources resources.yml --permissions grants.yml --select lock-1
//
//	# Unlock the selected resources on the server
//	lockctl dispatch unlock --select lock-1 --select lock-2
//
//	# Serve the session over HTTP
//	lockctl serve
//
// # Environment Variables
//
//   - LOCKABLE_CONFIG_PATH: Directory holding lockable.yml
//   - LOCKABLE_URL: Root of the lockable resources page
//   - LOCKABLE_USERNAME, LOCKABLE_API_TOKEN: Basic auth credentials
//   - LOCKABLE_LOG_LEVEL: Log level (debug, info, warn, error)
//   - LOCKABLE_AUDIT_ENABLED: Audit line output (default: true)
package main
