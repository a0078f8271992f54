package services

import (
	"serviceordering/internal/core/domain/model/order"
)

// MergeOrder applies an RFC 7386 merge patch to a service order document and
// returns the merged result. Neither input is mutated.
//
// The target's own id and href are force-restored onto the result after the
// merge, so a patch can never change them even through nested structures.
func MergeOrder(target order.Document, patch order.Document) order.Document {
	merged, isObject := mergeValue(map[string]any(target), map[string]any(patch)).(map[string]any)
	if !isObject {
		merged = map[string]any{}
	}

	result := order.Document(merged)
	if id := target.ID(); id != "" {
		result[order.FieldID] = id
	}
	if href := target.Href(); href != "" {
		result[order.FieldHref] = href
	}
	return result
}

// mergeValue implements the recursive merge-patch rules:
//   - a non-object patch node replaces the target node verbatim (arrays and
//     scalars are never merged element-wise)
//   - an object patch node is walked member by member: null removes the key,
//     an object recurses against the target's object (or an empty one), and
//     anything else replaces the target value outright
func mergeValue(target, patch any) any {
	patchObject, patchIsObject := patch.(map[string]any)
	if !patchIsObject {
		return deepCopyValue(patch)
	}

	result := map[string]any{}
	if targetObject, targetIsObject := target.(map[string]any); targetIsObject {
		for key, value := range targetObject {
			result[key] = deepCopyValue(value)
		}
	}

	for key, value := range patchObject {
		if value == nil {
			delete(result, key)
			continue
		}
		if _, valueIsObject := value.(map[string]any); valueIsObject {
			result[key] = mergeValue(result[key], value)
			continue
		}
		result[key] = deepCopyValue(value)
	}

	return result
}

func deepCopyValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return map[string]any(order.Document(typed).DeepCopy())
	case []any:
		copied := make([]any, len(typed))
		for i, entry := range typed {
			copied[i] = deepCopyValue(entry)
		}
		return copied
	default:
		return typed
	}
}
