package commands

import (
	"context"

	"serviceordering/internal/core/ports"
	"serviceordering/internal/pkg/errs"
)

// UnregisterListenerCommandHandler removes notification subscriptions.
type UnregisterListenerCommandHandler struct {
	listeners ports.ListenerRepository
}

// NewUnregisterListenerCommandHandler creates a handler for listener removal.
func NewUnregisterListenerCommandHandler(listeners ports.ListenerRepository) UnregisterListenerCommandHandler {
	return UnregisterListenerCommandHandler{listeners: listeners}
}

// Handle removes the registration, failing with NotFound if it never existed.
func (h UnregisterListenerCommandHandler) Handle(ctx context.Context, cmd UnregisterListenerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	existed, err := h.listeners.Delete(ctx, cmd.ListenerID())
	if err != nil {
		return err
	}
	if !existed {
		return errs.NewObjectNotFoundError("listenerId", cmd.ListenerID())
	}
	return nil
}
