package commands

import (
	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/pkg/errs"
	"serviceordering/internal/pkg/guard"
)

var (
	ErrPatchOrderCommandIsNotConstructed = errs.NewInvalidRequestError(
		"PatchOrderCommand must be created via NewPatchOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errs.NewInvalidRequestError("service order id is required")
	ErrPatchIsRequired   = errs.NewInvalidRequestError("merge patch document is required")
)

// PatchOrderCommand represents a request to partially update a service order
// with an RFC 7386 merge patch document.
type PatchOrderCommand struct {
	orderID string
	patch   order.Document

	guard guard.ConstructorGuard
}

// NewPatchOrderCommand creates a patch command. The patch document must be
// decoded (possibly empty, which the handler treats as a no-op) but not nil.
func NewPatchOrderCommand(orderID string, patch order.Document) (PatchOrderCommand, error) {
	if orderID == "" {
		return PatchOrderCommand{}, ErrOrderIDIsRequired
	}
	if patch == nil {
		return PatchOrderCommand{}, ErrPatchIsRequired
	}

	return PatchOrderCommand{
		orderID: orderID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrPatchOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to patch.
func (c PatchOrderCommand) OrderID() string {
	return c.orderID
}

// Patch returns the merge patch document.
func (c PatchOrderCommand) Patch() order.Document {
	return c.patch
}
