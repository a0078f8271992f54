package commands

import (
	"context"
	"reflect"

	"serviceordering/internal/core/domain/model/event"
	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/core/domain/services"
	"serviceordering/internal/core/ports"
	"serviceordering/internal/pkg/errs"
)

// PatchOrderResult carries the identifier and locator of the patched order.
// They are returned even when the patch turned out to be a no-op.
type PatchOrderResult struct {
	ID   string `json:"id"`
	Href string `json:"href"`
}

// PatchOrderCommandHandler applies a merge patch to a stored service order:
// mutability policy conditioned on the current state, the recursive merge,
// schema re-validation, persistence, and exactly one change notification.
type PatchOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.NotificationPublisher
}

// NewPatchOrderCommandHandler creates a handler for merge-patch updates.
func NewPatchOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.NotificationPublisher,
) PatchOrderCommandHandler {
	return PatchOrderCommandHandler{orders: orders, publisher: publisher}
}

// Handle processes the patch command. The stored record is left untouched
// unless the merged document passes schema validation; an empty or
// effect-free patch writes nothing and emits nothing. A real change emits
// either a StateChange notification (when the state field concretely changed
// value) or an AttributeValueChange notification, never both.
func (h PatchOrderCommandHandler) Handle(ctx context.Context, cmd PatchOrderCommand) (PatchOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PatchOrderResult{}, err
	}

	current, found, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return PatchOrderResult{}, err
	}
	if !found {
		return PatchOrderResult{}, errs.NewObjectNotFoundError("serviceOrderId", cmd.OrderID())
	}

	patch := cmd.Patch()
	if err = order.ValidatePatch(patch, current.State()); err != nil {
		return PatchOrderResult{}, err
	}

	result := PatchOrderResult{ID: current.ID(), Href: current.Href()}
	if len(patch) == 0 {
		return result, nil
	}

	merged := services.MergeOrder(current, patch)
	if err = order.ValidateDocument(merged); err != nil {
		return PatchOrderResult{}, err
	}
	if reflect.DeepEqual(merged, current) {
		return result, nil
	}

	if err = h.orders.Update(ctx, merged); err != nil {
		return PatchOrderResult{}, err
	}

	kind := event.KindAttributeValueChange
	if merged.State() != current.State() {
		kind = event.KindStateChange
	}
	h.publisher.Publish(kind, merged)

	return result, nil
}
