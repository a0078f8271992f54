package commands

import (
	"net/url"

	"serviceordering/internal/pkg/errs"
	"serviceordering/internal/pkg/guard"
)

var (
	ErrRegisterListenerCommandIsNotConstructed = errs.NewInvalidRequestError(
		"RegisterListenerCommand must be created via NewRegisterListenerCommand constructor",
	)
	ErrCallbackIsRequired = errs.NewInvalidRequestError("callback is required")
	ErrCallbackIsInvalid  = errs.NewInvalidRequestError("callback must be an absolute http or https URL")
)

// RegisterListenerCommand represents a request to subscribe a callback
// endpoint to lifecycle notifications, with an optional filter query.
type RegisterListenerCommand struct {
	callback string
	query    string

	guard guard.ConstructorGuard
}

// NewRegisterListenerCommand creates a registration command. The callback
// must be an absolute http(s) URL; the query is stored verbatim.
func NewRegisterListenerCommand(callback, query string) (RegisterListenerCommand, error) {
	if callback == "" {
		return RegisterListenerCommand{}, ErrCallbackIsRequired
	}
	parsed, err := url.Parse(callback)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return RegisterListenerCommand{}, ErrCallbackIsInvalid
	}

	return RegisterListenerCommand{
		callback: callback,
		query:    query,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterListenerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterListenerCommandIsNotConstructed)
}

// Callback returns the listener callback URL.
func (c RegisterListenerCommand) Callback() string {
	return c.callback
}

// Query returns the optional filter query, "" when absent.
func (c RegisterListenerCommand) Query() string {
	return c.query
}
