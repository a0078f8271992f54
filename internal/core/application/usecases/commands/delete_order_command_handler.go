package commands

import (
	"context"

	"serviceordering/internal/core/domain/model/event"
	"serviceordering/internal/core/ports"
	"serviceordering/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes a service order and emits the Deleted
// notification carrying the last known snapshot.
type DeleteOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.NotificationPublisher
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.NotificationPublisher,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orders: orders, publisher: publisher}
}

// Handle processes the delete command. The snapshot is taken before removal
// so the Deleted notification can carry the last stored representation.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	snapshot, found, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("serviceOrderId", cmd.OrderID())
	}

	existed, err := h.orders.Delete(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !existed {
		// Lost a race with a concurrent delete.
		return errs.NewObjectNotFoundError("serviceOrderId", cmd.OrderID())
	}

	h.publisher.Publish(event.KindDelete, snapshot)
	return nil
}
