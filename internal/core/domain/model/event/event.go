// Package event defines the lifecycle notification envelope delivered to
// registered listeners.
package event

import (
	"time"

	"serviceordering/internal/core/domain/model/order"
)

// Kind names a service order lifecycle event (wire values).
type Kind string

const (
	KindCreate               Kind = "ServiceOrderCreateNotification"
	KindAttributeValueChange Kind = "ServiceOrderAttributeValueChangeNotification"
	KindStateChange          Kind = "ServiceOrderStateChangeNotification"
	KindDelete               Kind = "ServiceOrderDeleteNotification"
)

func (k Kind) String() string {
	return string(k)
}

// Envelope is the notification payload POSTed to a listener callback. It is
// immutable: the hub constructs one per emission and never persists it.
type Envelope struct {
	EventID   string `json:"eventId"`
	EventTime string `json:"eventTime"`
	EventType Kind   `json:"eventType"`
	Event     Body   `json:"event"`
}

// Body wraps the service order snapshot taken at emission time.
type Body struct {
	ServiceOrder order.Document `json:"serviceOrder"`
}

// NewEnvelope builds an envelope around an order snapshot. The snapshot is
// deep-copied so later store mutations cannot leak into an in-flight delivery.
func NewEnvelope(eventID string, eventTime time.Time, kind Kind, serviceOrder order.Document) Envelope {
	return Envelope{
		EventID:   eventID,
		EventTime: order.FormatTimestamp(eventTime),
		EventType: kind,
		Event:     Body{ServiceOrder: serviceOrder.DeepCopy()},
	}
}
