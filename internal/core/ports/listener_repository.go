package ports

import (
	"context"

	"serviceordering/internal/core/domain/model/listener"
)

// ListenerRepository defines the persistence contract for notification
// subscriptions. Identifier generation follows the same monotonic-counter
// rules as order identifiers but uses an independent counter.
type ListenerRepository interface {
	// Add stores a new registration for the callback and optional filter
	// query, assigning it a fresh identifier.
	Add(ctx context.Context, callback, query string) (listener.Registration, error)

	// Get retrieves a registration by identifier. Absence is reported
	// through the boolean, not as an error.
	Get(ctx context.Context, id string) (listener.Registration, bool, error)

	// List returns a snapshot of all registrations.
	List(ctx context.Context) ([]listener.Registration, error)

	// Delete removes a registration and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
