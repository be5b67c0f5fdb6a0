package actionbar

import (
	"github.com/doodlesbykumbi/lockable-resources/pkg/permission"
	"github.com/doodlesbykumbi/lockable-resources/pkg/rules"
)

//go:generate go run github.com/dmarkham/enumer -type Button -trimprefix Button -transform lower -json -output button.gen.go

// Button is one capability-bound button of the action bar.
type Button int

const (
	ButtonUnlock Button = iota
	ButtonSteal
	ButtonReserve
	ButtonUnreserve
	ButtonReassign
	ButtonReset
	ButtonEdit
	ButtonAdminister
)

// rowButtons are gated per selected resource.
var rowButtons = []Button{
	ButtonUnlock,
	ButtonSteal,
	ButtonReserve,
	ButtonUnreserve,
	ButtonReassign,
	ButtonReset,
}

var buttonCapabilities = map[Button]permission.Capability{
	ButtonUnlock:     permission.CapabilityUnlock,
	ButtonSteal:      permission.CapabilitySteal,
	ButtonReserve:    permission.CapabilityReserve,
	ButtonUnreserve:  permission.CapabilityUnreserve,
	ButtonReassign:   permission.CapabilityReassign,
	ButtonReset:      permission.CapabilityReset,
	ButtonEdit:       permission.CapabilityEdit,
	ButtonAdminister: permission.CapabilityAdminister,
}

var buttonActions = map[Button]rules.Action{
	ButtonUnlock:    rules.ActionUnlock,
	ButtonSteal:     rules.ActionSteal,
	ButtonReserve:   rules.ActionReserve,
	ButtonUnreserve: rules.ActionUnreserve,
	ButtonReassign:  rules.ActionReassign,
	ButtonReset:     rules.ActionReset,
}

// ElementID is the id of the button element on the resources page.
func (b Button) ElementID() string {
	return "resource_action_" + b.String()
}

// Capability is the permission that controls the button's visibility.
func (b Button) Capability() permission.Capability {
	return buttonCapabilities[b]
}

// Action returns the row action the button triggers. Edit and administer
// have none.
func (b Button) Action() (rules.Action, bool) {
	a, ok := buttonActions[b]
	return a, ok
}

// ButtonFor returns the button that triggers a.
func ButtonFor(a rules.Action) (Button, bool) {
	for b, action := range buttonActions {
		if action == a {
			return b, true
		}
	}
	return 0, false
}

// RowButtons returns the six buttons gated by the selection.
func RowButtons() []Button {
	out := make([]Button, len(rowButtons))
	copy(out, rowButtons)
	return out
}
