package services

import (
	"strings"
	"time"

	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/pkg/errs"
)

// exactFilterFields support equality filtering on their wire string value.
// An absent field compares as the empty string.
var exactFilterFields = map[string]struct{}{
	order.FieldState:      {},
	order.FieldCategory:   {},
	order.FieldExternalID: {},
	order.FieldPriority:   {},
}

var dateOperators = map[string]struct{}{
	"gt":  {},
	"lt":  {},
	"gte": {},
	"lte": {},
}

// ApplyFilters narrows a list of order documents to the ones matching every
// filter. Keys are either exact-match field names or dotted date expressions
// such as orderDate.gt; anything else fails the whole operation with an
// InvalidFilter error rather than being silently ignored.
func ApplyFilters(orders []order.Document, filters map[string]string) ([]order.Document, error) {
	filtered := orders

	for filterKey, filterValue := range filters {
		if _, exact := exactFilterFields[filterKey]; exact {
			filtered = filterExact(filtered, filterKey, filterValue)
			continue
		}

		if dotIndex := strings.LastIndex(filterKey, "."); dotIndex > 0 {
			fieldName := filterKey[:dotIndex]
			operator := filterKey[dotIndex+1:]
			_, dateField := order.DateFields[fieldName]
			_, dateOperator := dateOperators[operator]
			if dateField && dateOperator {
				var err error
				filtered, err = filterDate(filtered, fieldName, operator, filterKey, filterValue)
				if err != nil {
					return nil, err
				}
				continue
			}
		}

		return nil, errs.NewInvalidFilterError(filterKey, "unsupported filter")
	}

	return filtered, nil
}

func filterExact(orders []order.Document, field, value string) []order.Document {
	matched := make([]order.Document, 0, len(orders))
	for _, candidate := range orders {
		if candidate.ScalarField(field) == value {
			matched = append(matched, candidate)
		}
	}
	return matched
}

// filterDate keeps orders whose field holds a timestamp satisfying the
// comparison. An order whose field is absent or not a timestamp never
// matches; only the filter value itself can make the operation fail.
func filterDate(orders []order.Document, field, operator, filterKey, value string) ([]order.Document, error) {
	threshold, err := order.ParseTimestamp(strings.TrimSpace(value))
	if err != nil {
		return nil, errs.NewInvalidFilterError(filterKey, "value is not an ISO-8601 timestamp")
	}

	matched := make([]order.Document, 0, len(orders))
	for _, candidate := range orders {
		raw, isString := candidate[field].(string)
		if !isString {
			continue
		}
		fieldTime, parseErr := order.ParseTimestamp(raw)
		if parseErr != nil {
			continue
		}
		if compareTimes(fieldTime, operator, threshold) {
			matched = append(matched, candidate)
		}
	}
	return matched, nil
}

func compareTimes(fieldTime time.Time, operator string, threshold time.Time) bool {
	switch operator {
	case "gt":
		return fieldTime.After(threshold)
	case "lt":
		return fieldTime.Before(threshold)
	case "gte":
		return !fieldTime.Before(threshold)
	default: // lte
		return !fieldTime.After(threshold)
	}
}
