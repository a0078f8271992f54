package commands

import (
	"serviceordering/internal/pkg/errs"
	"serviceordering/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errs.NewInvalidRequestError(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to delete a service order.
type DeleteOrderCommand struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a delete command for the given identifier.
func NewDeleteOrderCommand(orderID string) (DeleteOrderCommand, error) {
	if orderID == "" {
		return DeleteOrderCommand{}, ErrOrderIDIsRequired
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() string {
	return c.orderID
}
