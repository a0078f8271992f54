package commands

import (
	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/pkg/errs"
	"serviceordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errs.NewInvalidRequestError(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCreatePayloadIsRequired = errs.NewInvalidRequestError("create payload is required")
)

// CreateOrderCommand represents a request to create a new service order.
// It carries the decoded request body untouched plus the caller's optional
// field selection for the response projection.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(payload, fields)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	payload order.Document
	fields  []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command from a decoded create payload.
// A nil payload fails; full policy validation happens in the handler.
func NewCreateOrderCommand(payload order.Document, fields []string) (CreateOrderCommand, error) {
	if payload == nil {
		return CreateOrderCommand{}, ErrCreatePayloadIsRequired
	}

	return CreateOrderCommand{
		payload: payload,
		fields:  fields,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Payload returns the decoded create request body.
func (c CreateOrderCommand) Payload() order.Document {
	return c.payload
}

// Fields returns the requested response projection, nil for the full resource.
func (c CreateOrderCommand) Fields() []string {
	return c.fields
}
