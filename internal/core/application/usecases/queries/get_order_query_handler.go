package queries

import (
	"context"

	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/core/domain/services"
	"serviceordering/internal/core/ports"
	"serviceordering/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single service order and applies the
// requested field projection.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle retrieves the order, failing with NotFound when the identifier is
// absent, and projects it with the query's field selection.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Document, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	doc, found, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("serviceOrderId", query.OrderID())
	}

	return services.ProjectOrder(doc, query.Fields())
}
