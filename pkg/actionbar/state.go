package actionbar

//go:generate go run github.com/dmarkham/enumer -type State -trimprefix State -transform lower -json -output state.gen.go

// State is the rendered state of a button.
type State int

const (
	StateEnabled State = iota
	StateDisabled
	StateHidden
)
