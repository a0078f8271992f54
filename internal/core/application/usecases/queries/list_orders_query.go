package queries

import (
	"serviceordering/internal/pkg/errs"
	"serviceordering/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errs.NewInvalidRequestError(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery represents a request to list service orders narrowed by
// ad-hoc filters, with an optional field selection.
type ListOrdersQuery struct {
	filters map[string]string
	fields  []string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a list query. filters maps query parameter names
// to their string values; the reserved 'fields' parameter must already be
// stripped by the transport.
func NewListOrdersQuery(filters map[string]string, fields []string) (ListOrdersQuery, error) {
	copied := make(map[string]string, len(filters))
	for key, value := range filters {
		copied[key] = value
	}

	return ListOrdersQuery{
		filters: copied,
		fields:  fields,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Filters returns the filter expressions by query parameter name.
func (q ListOrdersQuery) Filters() map[string]string {
	return q.filters
}

// Fields returns the requested projection, nil for the full resource.
func (q ListOrdersQuery) Fields() []string {
	return q.fields
}
