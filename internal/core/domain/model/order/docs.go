// Package order implements the order lifecycle engine of the marketplace.
// It provides the Order aggregate root together with the declarative
// transition table that governs how mutually untrusted actors move an order
// from creation to a terminal state.
//
// The package includes:
//   - Order: the aggregate root holding identity, line snapshot, addresses,
//     totals and lifecycle state
//   - Status: the lifecycle states, PENDING through DELIVERED/CANCELLED
//   - The transition table: every legal (from, to) edge with the role and
//     ownership predicate allowed to traverse it
//   - Totals: the monetary summary with its sum invariant
//   - PaymentMethod: the recorded (never executed) payment choice
//
// Key business rules:
//   - Only the party currently responsible for an order (kitchen, courier,
//     customer, platform owner) can advance it
//   - DELIVERED and CANCELLED are terminal; nothing leaves them
//   - A driver is recorded on the order exactly once, when accepting it
//   - Failed transitions leave the order completely unchanged
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
