package rules

import (
	"github.com/doodlesbykumbi/lockable-resources/pkg/permission"
	"github.com/doodlesbykumbi/lockable-resources/pkg/resource"
)

// Predicate reports whether an action is allowed on r under perms.
type Predicate func(r resource.Resource, perms permission.Effective) bool

// CanUnlock: the resource is locked or reserved and UNLOCK is granted.
func CanUnlock(r resource.Resource, perms permission.Effective) bool {
	return (r.IsLocked || r.IsReserved) && perms.Has(permission.CapabilityUnlock)
}

// CanSteal: the resource is locked, not ephemeral, and STEAL is granted.
func CanSteal(r resource.Resource, perms permission.Effective) bool {
	return !r.IsEphemeral && r.IsLocked && perms.Has(permission.CapabilitySteal)
}

// CanReserve: the resource is free and RESERVE is granted.
func CanReserve(r resource.Resource, perms permission.Effective) bool {
	if r.IsLocked || r.IsReserved || r.IsQueued {
		return false
	}
	return perms.Has(permission.CapabilityReserve)
}

// CanUnreserve lets administrators release any reservation; everyone else
// needs UNRESERVE and must hold the reservation.
func CanUnreserve(r resource.Resource, perms permission.Effective) bool {
	if perms.Has(permission.CapabilityAdminister) {
		return r.IsReserved
	}
	return r.IsReservedByCurrentUser && perms.Has(permission.CapabilityUnreserve)
}

// CanReassign allows handing a reservation over when the caller is an
// administrator or holds the reservation with UNRESERVE and REASSIGN. A
// locked resource may only be reassigned by an administrator.
func CanReassign(r resource.Resource, perms permission.Effective) bool {
	if r.IsReserved {
		if perms.Has(permission.CapabilityAdminister) {
			return true
		}
		return r.IsReservedByCurrentUser &&
			perms.Has(permission.CapabilityUnreserve) &&
			perms.Has(permission.CapabilityReassign)
	}
	if r.IsLocked {
		// build ownership is not visible here
		return perms.Has(permission.CapabilityAdminister)
	}
	return false
}

// CanReset: RESET is granted and the resource can be unlocked, unreserved,
// or is queued.
func CanReset(r resource.Resource, perms permission.Effective) bool {
	return perms.Has(permission.CapabilityReset) &&
		(CanUnlock(r, perms) || CanUnreserve(r, perms) || r.IsQueued)
}

// CanEditNote controls note-button visibility. It does not depend on the
// resource.
func CanEditNote(perms permission.Effective) bool {
	return perms.Has(permission.CapabilityEdit)
}

var predicates = map[Action]Predicate{
	ActionUnlock:    CanUnlock,
	ActionSteal:     CanSteal,
	ActionReserve:   CanReserve,
	ActionUnreserve: CanUnreserve,
	ActionReassign:  CanReassign,
	ActionReset:     CanReset,
}

// For returns the predicate guarding a.
func For(a Action) (Predicate, bool) {
	p, ok := predicates[a]
	return p, ok
}

// Allowed reports whether a is allowed on r. Unknown actions are never allowed.
func Allowed(a Action, r resource.Resource, perms permission.Effective) bool {
	p, ok := predicates[a]
	if !ok {
		return false
	}
	return p(r, perms)
}

// Evaluate returns the verdict of every row-level action for r.
func Evaluate(r resource.Resource, perms permission.Effective) map[Action]bool {
	verdicts := make(map[Action]bool, len(predicates))
	for _, a := range ActionValues() {
		verdicts[a] = Allowed(a, r, perms)
	}
	return verdicts
}
