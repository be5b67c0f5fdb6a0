// Package selection tracks which table rows are checked and caches the last
// known snapshot of every rendered resource.
//
// The table itself is reached through the Source interface so the action
// bar can run headlessly. Table is the in-memory implementation used by the
// server and the tests.
package selection
