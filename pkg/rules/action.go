package rules

//go:generate go run github.com/dmarkham/enumer -type Action -trimprefix Action -transform lower -json -yaml -output action.gen.go

// Action is a row-level batch action offered by the action bar.
type Action int

const (
	ActionUnlock Action = iota
	ActionSteal
	ActionReserve
	ActionUnreserve
	ActionReassign
	ActionReset
)
