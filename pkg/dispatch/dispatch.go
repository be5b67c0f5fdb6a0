// Package dispatch turns a button press into a single action request for
// the currently selected resources.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/doodlesbykumbi/lockable-resources/pkg/audit"
	"github.com/doodlesbykumbi/lockable-resources/pkg/rules"
	"github.com/doodlesbykumbi/lockable-resources/pkg/selection"
)

// ErrUnknownAction is returned for actions outside the six row actions.
var ErrUnknownAction = errors.New("unknown action")

// Submitter sends a request to the server. Responses are not inspected
// beyond transport success.
type Submitter interface {
	Submit(ctx context.Context, req Request) error
}

// Dispatcher reads the selection and hands one request to the submitter.
type Dispatcher struct {
	tracker   *selection.Tracker
	submitter Submitter
	user      string
}

// NewDispatcher returns a dispatcher for the selection held by tracker.
func NewDispatcher(tracker *selection.Tracker, submitter Submitter) *Dispatcher {
	return &Dispatcher{tracker: tracker, submitter: submitter}
}

// WithUser names the acting user in audit events.
func (d *Dispatcher) WithUser(user string) *Dispatcher {
	d.user = user
	return d
}

// Dispatch submits action for the current selection. An empty selection
// is a silent no-op.
func (d *Dispatcher) Dispatch(ctx context.Context, action rules.Action) error {
	if !action.IsAAction() {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	names := d.tracker.Selected()
	if len(names) == 0 {
		slog.DebugContext(ctx, "nothing selected, not dispatching", "action", action.String())
		return nil
	}

	req := Request{Action: action, Resources: names}
	slog.DebugContext(ctx, "dispatching action", "action", action.String(), "resources", names)

	err := d.submitter.Submit(ctx, req)
	event := audit.ActionEvent{
		User:      d.user,
		Action:    action.String(),
		Resources: names,
		Success:   err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)

	if err != nil {
		return fmt.Errorf("failed to submit %s: %w", action, err)
	}
	return nil
}
