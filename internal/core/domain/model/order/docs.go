// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing identity, line items and lifecycle
//   - Item: an immutable line-item value object with a derived line total
//   - Status: a state machine that enforces valid status transitions
//
// Key business rules:
//   - Orders start in PENDING; the status is never client-supplied
//   - PENDING orders are promoted to PROCESSING in bulk by the promotion job
//   - Cancellation is only legal from PENDING
//   - SHIPPED is written by an external subsystem and never produced here
//   - The order total is the sum of line totals, recomputed on every read
//
// The package follows the same aggregate conventions as the rest of the
// codebase: private fields, validating constructors, and a Restore function
// for rehydration from persistence.
package order
