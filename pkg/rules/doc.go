// Package rules decides, from a resource snapshot and the effective
// permissions, which row-level actions are currently allowed.
//
// Every predicate is pure and total. The reassign rule cannot see build
// ownership on the client, so a locked (not reserved) resource may only be
// reassigned by an administrator.
package rules
