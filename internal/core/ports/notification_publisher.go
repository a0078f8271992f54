package ports

import (
	"serviceordering/internal/core/domain/model/event"
	"serviceordering/internal/core/domain/model/order"
)

// NotificationPublisher fans a lifecycle event out to registered listeners
// with best-effort delivery. Publishing never fails the triggering operation:
// once a lifecycle mutation has committed, delivery proceeds to completion or
// timeout regardless of the original request's context, and every transport
// failure is logged and swallowed.
type NotificationPublisher interface {
	// Publish emits one lifecycle event carrying a snapshot of the order.
	Publish(kind event.Kind, serviceOrder order.Document)
}
