package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doodlesbykumbi/lockable-resources/pkg/permission"
	"github.com/doodlesbykumbi/lockable-resources/pkg/resource"
)

// allResources enumerates every flag combination that keeps
// IsReservedByCurrentUser => IsReserved.
func allResources() []resource.Resource {
	var out []resource.Resource
	for mask := 0; mask < 1<<5; mask++ {
		r := resource.Resource{
			Name:                    "r",
			IsLocked:                mask&1 != 0,
			IsReserved:              mask&2 != 0,
			IsQueued:                mask&4 != 0,
			IsEphemeral:             mask&8 != 0,
			IsReservedByCurrentUser: mask&16 != 0,
		}
		if r.IsReservedByCurrentUser && !r.IsReserved {
			continue
		}
		out = append(out, r)
	}
	return out
}

// allPermissions derives every combination of the four raw grants that matter.
func allPermissions() []permission.Effective {
	var out []permission.Effective
	names := []string{"UNLOCK", "STEAL", "RESERVE", "ADMINISTER"}
	for mask := 0; mask < 1<<len(names); mask++ {
		raw := permission.Grants{}
		for i, name := range names {
			raw[name] = mask&(1<<i) != 0
		}
		out = append(out, permission.Derive(raw))
	}
	return out
}

func TestCanSteal_NeverEphemeral(t *testing.T) {
	for _, perms := range allPermissions() {
		for _, r := range allResources() {
			if r.IsEphemeral {
				assert.Falsef(t, CanSteal(r, perms), "%+v %v", r, perms.Names())
			}
		}
	}
}

func TestCanReserve_OnlyFree(t *testing.T) {
	for _, perms := range allPermissions() {
		for _, r := range allResources() {
			if r.IsLocked || r.IsReserved || r.IsQueued {
				assert.Falsef(t, CanReserve(r, perms), "%+v %v", r, perms.Names())
			}
		}
	}
}

func TestCanUnreserve_AdministerIgnoresOwnership(t *testing.T) {
	admin := permission.Derive(permission.Grants{"ADMINISTER": true})
	for _, r := range allResources() {
		assert.Equalf(t, r.IsReserved, CanUnreserve(r, admin), "%+v", r)
	}
}

func TestCanReset_Definition(t *testing.T) {
	for _, perms := range allPermissions() {
		for _, r := range allResources() {
			expected := perms.Has(permission.CapabilityReset) &&
				(CanUnlock(r, perms) || CanUnreserve(r, perms) || r.IsQueued)
			assert.Equal(t, expected, CanReset(r, perms))
		}
	}
}

func TestRules_NothingGranted(t *testing.T) {
	none := permission.Derive(nil)
	for _, r := range allResources() {
		for _, a := range ActionValues() {
			assert.Falsef(t, Allowed(a, r, none), "%s on %+v", a, r)
		}
	}
	assert.False(t, CanEditNote(none))
}

func TestRules_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		raw      permission.Grants
		resource resource.Resource
		expected map[Action]bool
	}{
		{
			name:     "reserver on a free resource",
			raw:      permission.Grants{"RESERVE": true},
			resource: resource.Resource{Name: "free"},
			expected: map[Action]bool{
				ActionUnlock: false, ActionSteal: false, ActionReserve: true,
				ActionUnreserve: false, ActionReassign: false, ActionReset: false,
			},
		},
		{
			name:     "administrator on a resource reserved by someone else",
			raw:      permission.Grants{"ADMINISTER": true},
			resource: resource.Resource{Name: "taken", IsReserved: true},
			expected: map[Action]bool{
				ActionUnlock: true, ActionSteal: false, ActionReserve: false,
				ActionUnreserve: true, ActionReassign: true, ActionReset: true,
			},
		},
		{
			name:     "reserver holding the reservation",
			raw:      permission.Grants{"RESERVE": true},
			resource: resource.Resource{Name: "mine", IsReserved: true, IsReservedByCurrentUser: true},
			expected: map[Action]bool{
				ActionUnlock: false, ActionSteal: false, ActionReserve: false,
				ActionUnreserve: true, ActionReassign: false, ActionReset: false,
			},
		},
		{
			name:     "reserver and stealer holding the reservation may reassign",
			raw:      permission.Grants{"RESERVE": true, "STEAL": true},
			resource: resource.Resource{Name: "mine", IsReserved: true, IsReservedByCurrentUser: true},
			expected: map[Action]bool{
				ActionUnlock: false, ActionSteal: false, ActionReserve: false,
				ActionUnreserve: true, ActionReassign: true, ActionReset: false,
			},
		},
		{
			name:     "stealer on a locked resource cannot reassign it",
			raw:      permission.Grants{"STEAL": true},
			resource: resource.Resource{Name: "busy", IsLocked: true},
			expected: map[Action]bool{
				ActionUnlock: false, ActionSteal: true, ActionReserve: false,
				ActionUnreserve: false, ActionReassign: false, ActionReset: false,
			},
		},
		{
			name:     "administrator on an ephemeral locked resource",
			raw:      permission.Grants{"ADMINISTER": true},
			resource: resource.Resource{Name: "ephemeral", IsLocked: true, IsEphemeral: true},
			expected: map[Action]bool{
				ActionUnlock: true, ActionSteal: false, ActionReserve: false,
				ActionUnreserve: false, ActionReassign: true, ActionReset: true,
			},
		},
		{
			name:     "unlocker on a queued resource can only reset it",
			raw:      permission.Grants{"UNLOCK": true},
			resource: resource.Resource{Name: "queued", IsQueued: true},
			expected: map[Action]bool{
				ActionUnlock: false, ActionSteal: false, ActionReserve: false,
				ActionUnreserve: false, ActionReassign: false, ActionReset: true,
			},
		},
		{
			name:     "locked and reserved at once",
			raw:      permission.Grants{"UNLOCK": true, "STEAL": true},
			resource: resource.Resource{Name: "both", IsLocked: true, IsReserved: true},
			expected: map[Action]bool{
				ActionUnlock: true, ActionSteal: true, ActionReserve: false,
				ActionUnreserve: false, ActionReassign: false, ActionReset: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perms := permission.Derive(tt.raw)
			assert.Equal(t, tt.expected, Evaluate(tt.resource, perms))
		})
	}
}

func TestAllowed_UnknownAction(t *testing.T) {
	admin := permission.Derive(permission.Grants{"ADMINISTER": true})
	assert.False(t, Allowed(Action(42), resource.Resource{IsLocked: true}, admin))

	_, ok := For(Action(42))
	assert.False(t, ok)
}

func TestActionString(t *testing.T) {
	a, err := ActionString("reassign")
	assert.NoError(t, err)
	assert.Equal(t, ActionReassign, a)
	assert.Equal(t, "unreserve", ActionUnreserve.String())

	_, err = ActionString("edit")
	assert.Error(t, err)
}
