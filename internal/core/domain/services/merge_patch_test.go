package services_test

import (
	"testing"

	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOrder_ScalarReplaceAndAdd(t *testing.T) {
	target := order.Document{"id": "1", "category": "broadband", "description": "old"}
	patch := order.Document{"description": "new", "notificationContact": "ops@example.com"}

	merged := services.MergeOrder(target, patch)

	assert.Equal(t, "new", merged.StringField("description"))
	assert.Equal(t, "ops@example.com", merged.StringField("notificationContact"))
	assert.Equal(t, "broadband", merged.StringField("category"))
}

func TestMergeOrder_NullRemovesKey(t *testing.T) {
	target := order.Document{"id": "1", "description": "old", "category": "broadband"}
	patch := order.Document{"description": nil}

	merged := services.MergeOrder(target, patch)

	_, present := merged["description"]
	assert.False(t, present)
	assert.Equal(t, "broadband", merged.StringField("category"))
}

func TestMergeOrder_NestedObjectsMergeMemberwise(t *testing.T) {
	target := order.Document{
		"id": "1",
		"extensions": map[string]any{
			"vendor": map[string]any{"name": "acme", "tier": "gold"},
		},
	}
	patch := order.Document{
		"extensions": map[string]any{
			"vendor": map[string]any{"tier": "silver"},
		},
	}

	merged := services.MergeOrder(target, patch)

	vendor := merged["extensions"].(map[string]any)["vendor"].(map[string]any)
	assert.Equal(t, "acme", vendor["name"])
	assert.Equal(t, "silver", vendor["tier"])
}

func TestMergeOrder_ArraysReplaceWhole(t *testing.T) {
	target := order.Document{
		"id": "1",
		"note": []any{
			map[string]any{"author": "a", "text": "first"},
			map[string]any{"author": "b", "text": "second"},
		},
	}
	patch := order.Document{
		"note": []any{map[string]any{"author": "c", "text": "only"}},
	}

	merged := services.MergeOrder(target, patch)

	notes := merged["note"].([]any)
	require.Len(t, notes, 1)
	assert.Equal(t, "only", notes[0].(map[string]any)["text"])
}

func TestMergeOrder_ObjectReplacesScalar(t *testing.T) {
	target := order.Document{"id": "1", "slot": "plain"}
	patch := order.Document{"slot": map[string]any{"kind": "structured"}}

	merged := services.MergeOrder(target, patch)

	slot, ok := merged["slot"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "structured", slot["kind"])
}

func TestMergeOrder_IdentifierAndHrefAreRestored(t *testing.T) {
	target := order.Document{"id": "1", "href": "/serviceOrder/1", "category": "broadband"}
	patch := order.Document{"id": "999", "href": nil}

	merged := services.MergeOrder(target, patch)

	assert.Equal(t, "1", merged.ID())
	assert.Equal(t, "/serviceOrder/1", merged.Href())
}

func TestMergeOrder_InputsAreNotMutated(t *testing.T) {
	target := order.Document{
		"id":         "1",
		"extensions": map[string]any{"keep": "original"},
	}
	patch := order.Document{
		"extensions": map[string]any{"keep": "changed", "added": "x"},
	}

	merged := services.MergeOrder(target, patch)
	merged["extensions"].(map[string]any)["keep"] = "mutated"

	assert.Equal(t, "original", target["extensions"].(map[string]any)["keep"])
	assert.Equal(t, "changed", patch["extensions"].(map[string]any)["keep"])
}

func TestMergeOrder_UnknownAttributesSurvive(t *testing.T) {
	target := order.Document{"id": "1", "x-vendor-tag": "keep-me"}
	patch := order.Document{"category": "mobile"}

	merged := services.MergeOrder(target, patch)

	assert.Equal(t, "keep-me", merged.StringField("x-vendor-tag"))
}
