// Package order defines the service order resource model.
//
// A service order is kept as a semi-structured JSON document tree rather than
// a rigid struct so that vendor extension attributes (@type, @baseType and
// any unrecognized members) survive create, patch and projection round trips.
// Typed checks apply at the declared-field boundary: the package knows the
// full wire-level field set of the schema, the lifecycle state machine, and
// the structural rules each collection element must satisfy.
//
// Validation is split by operation:
//   - ValidateCreate checks a client create payload (server-managed fields
//     rejected, at least one order item, per-item feasibility rules).
//   - ValidatePatch checks a merge-patch body against field mutability
//     policy, conditioned on the order's current state.
//   - ValidateDocument re-validates a full document against the schema,
//     used after a merge patch has been applied.
package order
