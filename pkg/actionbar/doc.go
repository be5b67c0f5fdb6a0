// Package actionbar drives the enabled and visible state of the resources
// action bar.
//
// On every permission load the controller hides the buttons the user may
// never use. On every checkbox toggle it re-enables the permitted buttons
// and then disables each row action that is invalid for at least one
// selected resource, so a batch action is only offered when it is valid for
// the whole selection. With nothing selected every row action and the edit
// button are disabled.
//
// # Usage
//
//	table := selection.NewTable("printer", "scanner")
//	bar := actionbar.NewController(selection.NewTracker(table), registry)
//	bar.Load(permission.Grants{"RESERVE": true})
//
//	table.SetChecked("printer", true)
//	bar.OnSelectionChange(resource.Resource{Name: "printer"}, true)
//	bar.State(actionbar.ButtonReserve) // actionbar.StateEnabled
package actionbar
