// Package audit provides audit logging for lockable-resources operations.
//
// Every dispatched batch action, permission load and note edit produces a
// structured event written as an RFC5424 syslog line.
//
// # Event Types
//
//   - Action events (unlock, steal, reserve, unreserve, reassign, reset)
//   - Permission load events
//   - Note edit events
//
// # Usage
//
//	audit.Log(audit.ActionEvent{
//	    User:      "alice",
//	    Action:    "unlock",
//	    Resources: []string{"printer"},
//	    Success:   true,
//	})
//
// Logging can be turned off with LOCKABLE_AUDIT_ENABLED=false.
package audit
