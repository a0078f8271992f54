package queries

import (
	"context"

	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/core/domain/services"
	"serviceordering/internal/core/ports"
)

// ListOrdersQueryHandler lists service orders: a store snapshot is taken
// first, then filtering and projection run on private copies outside any
// store lock.
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle applies the query's filters and projection over the current
// snapshot. No match yields an empty list, never an error; an unsupported
// filter fails the whole operation.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]order.Document, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := services.ApplyFilters(snapshot, query.Filters())
	if err != nil {
		return nil, err
	}

	return services.ProjectOrders(filtered, query.Fields())
}
