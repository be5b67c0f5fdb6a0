// Package permission derives the effective lockable-resources capabilities
// from a raw permission grant set.
//
// The raw set is the eight-key boolean mapping handed to the action bar at
// page load. Coarse grants fold into finer ones: ADMINISTER implies every
// capability, UNLOCK implies RESET, STEAL implies REASSIGN, RESERVE implies
// UNRESERVE, and any of RESERVE, UNLOCK or STEAL implies EDIT.
//
// # Usage
//
//	var table permission.Table
//	table.Load(permission.Grants{"RESERVE": true})
//	if table.Has(permission.CapabilityUnreserve) {
//	    ...
//	}
package permission
