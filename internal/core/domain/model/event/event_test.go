package event_test

import (
	"encoding/json"
	"testing"
	"time"

	"serviceordering/internal/core/domain/model/event"
	"serviceordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope_SnapshotIsIndependent(t *testing.T) {
	doc := order.Document{"id": "1", "state": "acknowledged"}
	envelope := event.NewEnvelope("00001", time.Now(), event.KindCreate, doc)

	doc["state"] = "completed"

	assert.Equal(t, "acknowledged", envelope.Event.ServiceOrder.StringField("state"))
}

func TestEnvelope_WireShape(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	envelope := event.NewEnvelope("00007", at, event.KindStateChange, order.Document{"id": "3"})

	encoded, err := json.Marshal(envelope)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, "00007", decoded["eventId"])
	assert.Equal(t, "2025-03-01T10:00:00Z", decoded["eventTime"])
	assert.Equal(t, "ServiceOrderStateChangeNotification", decoded["eventType"])
	body, ok := decoded["event"].(map[string]any)
	require.True(t, ok)
	serviceOrder, ok := body["serviceOrder"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "3", serviceOrder["id"])
}
