package permission

import (
	"sort"
	"strings"
)

// Grants is the raw permission set supplied by the page, keyed by
// capability name. Missing keys are treated as not granted.
type Grants map[string]bool

// Granted reports whether the raw set grants c directly. Both the
// upper-case capability name and its lower-case form are accepted.
func (g Grants) Granted(c Capability) bool {
	if g == nil {
		return false
	}
	name := c.String()
	return g[name] || g[strings.ToLower(name)]
}

// Effective maps every capability to its derived value.
type Effective map[Capability]bool

// Has reports whether c is effectively granted.
func (e Effective) Has(c Capability) bool {
	return e[c]
}

// Capabilities returns the granted capabilities in declaration order.
func (e Effective) Capabilities() []Capability {
	var granted []Capability
	for _, c := range CapabilityValues() {
		if e[c] {
			granted = append(granted, c)
		}
	}
	return granted
}

// Names returns the names of the granted capabilities, sorted.
func (e Effective) Names() []string {
	names := make([]string, 0, len(e))
	for _, c := range e.Capabilities() {
		names = append(names, c.String())
	}
	sort.Strings(names)
	return names
}

// Derive folds coarse grants into the eight effective capabilities.
// Every derivation ORs in ADMINISTER.
func Derive(raw Grants) Effective {
	admin := raw.Granted(CapabilityAdminister)
	unlock := raw.Granted(CapabilityUnlock)
	steal := raw.Granted(CapabilitySteal)
	reserve := raw.Granted(CapabilityReserve)

	return Effective{
		CapabilityUnlock:     unlock || admin,
		CapabilityReset:      unlock || admin,
		CapabilitySteal:      steal || admin,
		CapabilityReassign:   steal || admin,
		CapabilityReserve:    reserve || admin,
		CapabilityUnreserve:  reserve || admin,
		CapabilityEdit:       reserve || unlock || steal || admin,
		CapabilityAdminister: admin,
	}
}
