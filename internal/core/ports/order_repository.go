package ports

import (
	"context"

	"serviceordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for service order
// documents. Implementations own identifier generation: identifiers are
// monotonically increasing per repository, start at 1, and are never reused
// even after deletion.
//
// Every returned document is an independent deep copy; callers can never
// mutate stored state through a read result.
type OrderRepository interface {
	// NextID reserves and returns a fresh service order identifier.
	NextID(ctx context.Context) (string, error)

	// Add persists a new service order. The document must already carry its
	// identifier. Fails with a Conflict error if the identifier exists.
	Add(ctx context.Context, doc order.Document) error

	// Update replaces an existing service order. Updating an identifier that
	// was never stored is a broken caller contract and fails with an
	// Internal error.
	Update(ctx context.Context, doc order.Document) error

	// Get retrieves a service order by identifier. Absence is reported
	// through the boolean, not as an error.
	Get(ctx context.Context, id string) (order.Document, bool, error)

	// List returns a snapshot of all stored service orders.
	List(ctx context.Context) ([]order.Document, error)

	// Delete removes a service order and reports whether a record existed.
	Delete(ctx context.Context, id string) (bool, error)
}
