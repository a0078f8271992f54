package order

import (
	"fmt"
	"time"
)

// TypeName is the default @type stamped onto created service orders.
const TypeName = "ServiceOrder"

// Document is a service order as a JSON document tree, the shape produced by
// encoding/json unmarshaling into map[string]any. The canonical stored copy
// keeps date attributes as RFC 3339 strings.
type Document map[string]any

// ID returns the server-assigned identifier, or "" if unset.
func (d Document) ID() string {
	return d.StringField(FieldID)
}

// Href returns the server-assigned resource locator, or "" if unset.
func (d Document) Href() string {
	return d.StringField(FieldHref)
}

// State returns the order's lifecycle state, or "" if unset.
func (d Document) State() State {
	return State(d.StringField(FieldState))
}

// StringField returns the value of a top-level field when it is a string,
// "" otherwise.
func (d Document) StringField(name string) string {
	value, ok := d[name].(string)
	if !ok {
		return ""
	}
	return value
}

// ScalarField renders a top-level field as its wire string: "" when the field
// is absent or null, the string itself otherwise. Used by exact-match filters.
func (d Document) ScalarField(name string) string {
	value, present := d[name]
	if !present || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// OrderItems returns the orderItem collection entries that are objects.
// A missing or differently typed orderItem field yields nil.
func (d Document) OrderItems() []Document {
	raw, ok := d[FieldOrderItem].([]any)
	if !ok {
		return nil
	}
	items := make([]Document, 0, len(raw))
	for _, entry := range raw {
		if item, isObject := entry.(map[string]any); isObject {
			items = append(items, Document(item))
		}
	}
	return items
}

// DeepCopy returns an independent copy of the document so callers can never
// mutate a stored record through a returned reference.
func (d Document) DeepCopy() Document {
	if d == nil {
		return nil
	}
	return Document(copyValue(map[string]any(d)).(map[string]any))
}

func copyValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		copied := make(map[string]any, len(typed))
		for key, entry := range typed {
			copied[key] = copyValue(entry)
		}
		return copied
	case []any:
		copied := make([]any, len(typed))
		for i, entry := range typed {
			copied[i] = copyValue(entry)
		}
		return copied
	default:
		return typed
	}
}

// timestampLayouts are the accepted ISO-8601 shapes, offset-carrying first.
// Layouts without an offset are interpreted as UTC.
var timestampLayouts = []struct {
	layout string
	utc    bool
}{
	{layout: time.RFC3339Nano},
	{layout: "2006-01-02T15:04:05.999999999", utc: true},
	{layout: "2006-01-02T15:04:05", utc: true},
	{layout: "2006-01-02", utc: true},
}

// ParseTimestamp parses an ISO-8601 timestamp. A trailing Z is equivalent to
// +00:00 and a timestamp without an offset is treated as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	for _, candidate := range timestampLayouts {
		var (
			parsed time.Time
			err    error
		)
		if candidate.utc {
			parsed, err = time.ParseInLocation(candidate.layout, value, time.UTC)
		} else {
			parsed, err = time.Parse(candidate.layout, value)
		}
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("value %q is not an ISO-8601 timestamp", value)
}

// FormatTimestamp renders a timestamp the way stored documents carry dates.
func FormatTimestamp(value time.Time) string {
	return value.UTC().Format(time.RFC3339)
}
