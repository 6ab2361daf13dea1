package order

import (
	"fmt"

	"swiftdrop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The happy path runs the kitchen side first and the courier side second:
//
//	PENDING ──> RESTAURANT_ACCEPTED ──> PREPARING ──> READY_FOR_PICKUP
//	                                                        │
//	                                                        v
//	              DELIVERED <── IN_TRANSIT <── PICKED_UP <── ACCEPTED
//
// CANCELLED is the alternate terminal, reachable from every state before
// pickup. A parcel order with no restaurant skips the kitchen entirely:
// a driver accepts it straight from PENDING.
//
// DELIVERED and CANCELLED are terminal; no transition leaves either.
// Which actor may traverse which edge is declared in the transition table,
// not here: Status only names the states and their terminality.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at checkout.
	StatusPending

	// StatusRestaurantAccepted means the restaurant has taken the order on.
	StatusRestaurantAccepted

	// StatusPreparing means the kitchen is working on the order.
	StatusPreparing

	// StatusReadyForPickup means the order awaits a driver at the restaurant.
	StatusReadyForPickup

	// StatusAccepted means a driver has claimed the order.
	StatusAccepted

	// StatusPickedUp means the assigned driver has collected the order.
	StatusPickedUp

	// StatusInTransit means the order is on its way to the dropoff address.
	StatusInTransit

	// StatusDelivered is the successful terminal status.
	StatusDelivered

	// StatusCancelled is the alternate terminal status.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:            "UNKNOWN",
		StatusPending:            "PENDING",
		StatusRestaurantAccepted: "RESTAURANT_ACCEPTED",
		StatusPreparing:          "PREPARING",
		StatusReadyForPickup:     "READY_FOR_PICKUP",
		StatusAccepted:           "ACCEPTED",
		StatusPickedUp:           "PICKED_UP",
		StatusInTransit:          "IN_TRANSIT",
		StatusDelivered:          "DELIVERED",
		StatusCancelled:          "CANCELLED",
	}
}

// StatusFromString parses a status from its wire representation, for example
// "READY_FOR_PICKUP". Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the declared lifecycle
// states. StatusUnknown and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g. database, API) are valid before use.
func (s Status) Validate() error {
	if s < StatusPending || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// String returns the wire name of the status, e.g. "PENDING".
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
