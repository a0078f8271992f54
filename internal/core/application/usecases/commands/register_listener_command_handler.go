package commands

import (
	"context"

	"serviceordering/internal/core/domain/model/listener"
	"serviceordering/internal/core/ports"
)

// RegisterListenerResult carries the stored registration plus the computed
// sub-resource locator for the Location response header.
type RegisterListenerResult struct {
	Registration listener.Registration
	Location     string
}

// RegisterListenerCommandHandler stores notification subscriptions.
type RegisterListenerCommandHandler struct {
	listeners ports.ListenerRepository
	hubPath   string
}

// NewRegisterListenerCommandHandler creates a handler for listener
// registration. hubPath is the base path of the hub sub-resource; it defaults
// to /hub when blank.
func NewRegisterListenerCommandHandler(
	listeners ports.ListenerRepository,
	hubPath string,
) RegisterListenerCommandHandler {
	return RegisterListenerCommandHandler{
		listeners: listeners,
		hubPath:   normalizeResourcePath(hubPath, "/hub"),
	}
}

// Handle stores the registration and returns it with its locator.
func (h RegisterListenerCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterListenerCommand,
) (RegisterListenerResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterListenerResult{}, err
	}

	registration, err := h.listeners.Add(ctx, cmd.Callback(), cmd.Query())
	if err != nil {
		return RegisterListenerResult{}, err
	}

	return RegisterListenerResult{
		Registration: registration,
		Location:     h.hubPath + "/" + registration.ID,
	}, nil
}
