package services

import (
	"sort"
	"strings"

	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/pkg/errs"
)

// ParseFields splits a raw 'fields' query value into individual field names.
// Callers invoke it only when the parameter was supplied; a selection that
// yields no names is an InvalidFieldSelection error.
func ParseFields(raw string) ([]string, error) {
	fields := make([]string, 0)
	for _, field := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	if len(fields) == 0 {
		return nil, errs.NewInvalidFieldSelectionError("query parameter 'fields' must not be empty")
	}
	return fields, nil
}

// ValidateFieldSelection checks requested field names against the declared
// field set of the order schema, never against the fields a given instance
// happens to have. A nil selection means the full resource and is valid.
func ValidateFieldSelection(fields []string) error {
	invalid := make([]string, 0)
	seen := make(map[string]struct{})
	for _, field := range fields {
		if _, declared := order.DeclaredFields[field]; !declared {
			if _, dup := seen[field]; !dup {
				invalid = append(invalid, field)
				seen[field] = struct{}{}
			}
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return errs.NewInvalidFieldSelectionError(
			"unsupported fields in 'fields' selection: " + strings.Join(invalid, ", "))
	}
	return nil
}

// ProjectOrder renders a service order for a response. With no selection the
// full document is returned (unset fields are simply absent from the stored
// tree). With a selection, exactly the requested names are returned, with an
// explicit null for declared fields the order does not carry.
func ProjectOrder(doc order.Document, fields []string) (order.Document, error) {
	if fields == nil {
		return doc.DeepCopy(), nil
	}

	if err := ValidateFieldSelection(fields); err != nil {
		return nil, err
	}

	projection := make(order.Document, len(fields))
	copied := doc.DeepCopy()
	for _, field := range fields {
		value, present := copied[field]
		if !present {
			projection[field] = nil
			continue
		}
		projection[field] = value
	}
	return projection, nil
}

// ProjectOrders projects every document with the same selection.
func ProjectOrders(docs []order.Document, fields []string) ([]order.Document, error) {
	projected := make([]order.Document, 0, len(docs))
	for _, doc := range docs {
		projection, err := ProjectOrder(doc, fields)
		if err != nil {
			return nil, err
		}
		projected = append(projected, projection)
	}
	return projected, nil
}
