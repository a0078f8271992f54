package queries

import (
	"serviceordering/internal/pkg/errs"
	"serviceordering/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errs.NewInvalidRequestError(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsRequired = errs.NewInvalidRequestError("service order id is required")
)

// GetOrderQuery represents a request to retrieve one service order, with an
// optional field selection for the response projection.
type GetOrderQuery struct {
	orderID string
	fields  []string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a retrieval query. fields is nil for the full
// resource representation.
func NewGetOrderQuery(orderID string, fields []string) (GetOrderQuery, error) {
	if orderID == "" {
		return GetOrderQuery{}, ErrOrderIDIsRequired
	}

	return GetOrderQuery{
		orderID: orderID,
		fields:  fields,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

// Fields returns the requested projection, nil for the full resource.
func (q GetOrderQuery) Fields() []string {
	return q.fields
}
