// Package session holds the live marketplace session: the authenticated
// actor and their in-progress cart, plus the named atomic operations the
// apps drive the marketplace through.
//
// Concurrency discipline: a single mutex guards the session state (actor and
// cart). Every exported operation acquires it for its full duration, so
// observers never see a half-applied operation. Checkout in particular
// creates the order and clears the cart as one step. Order state itself
// lives in the order store and is guarded by its own optimistic-concurrency
// protocol, not by the session lock.
package session
