package commands

import (
	"serviceordering/internal/pkg/errs"
	"serviceordering/internal/pkg/guard"
)

var (
	ErrUnregisterListenerCommandIsNotConstructed = errs.NewInvalidRequestError(
		"UnregisterListenerCommand must be created via NewUnregisterListenerCommand constructor",
	)
	ErrListenerIDIsRequired = errs.NewInvalidRequestError("listener id is required")
)

// UnregisterListenerCommand represents a request to remove a notification
// subscription.
type UnregisterListenerCommand struct {
	listenerID string

	guard guard.ConstructorGuard
}

// NewUnregisterListenerCommand creates an unregister command for the given
// listener identifier.
func NewUnregisterListenerCommand(listenerID string) (UnregisterListenerCommand, error) {
	if listenerID == "" {
		return UnregisterListenerCommand{}, ErrListenerIDIsRequired
	}

	return UnregisterListenerCommand{
		listenerID: listenerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UnregisterListenerCommand) Validate() error {
	return c.guard.Validate(ErrUnregisterListenerCommandIsNotConstructed)
}

// ListenerID returns the identifier of the registration to remove.
func (c UnregisterListenerCommand) ListenerID() string {
	return c.listenerID
}
