package order

import (
	"errors"

	"swiftdrop/internal/core/domain/model/actor"
)

// Preconditions reported when an edge exists in the table but is not
// available for this particular order.
var (
	errDriverAlreadyAssigned = errors.New("driver is already assigned")
	errOrderHasNoRestaurant  = errors.New("order has no restaurant")
	errOrderHasRestaurant    = errors.New("order is bound to a restaurant")
)

// edge is a key into the transition table: the status the order is in and
// the status being requested.
type edge struct {
	from Status
	to   Status
}

// rule declares who may traverse an edge and when the edge applies.
//
// authorized answers whether the acting actor is the party responsible for
// this step: the admin of the order's restaurant for kitchen edges, the
// assigned driver for courier edges, the owning customer or the platform
// owner for cancellations. available gates edges that only exist for some
// orders, such as driver acceptance requiring no driver yet; a nil available
// means the edge is unconditional. assignsDriver marks the single edge that
// claims the order for the acting driver.
type rule struct {
	authorized    func(o *Order, acting *actor.Actor) bool
	available     func(o *Order) error
	assignsDriver bool
}

func restaurantAdminOwning(o *Order, acting *actor.Actor) bool {
	return o.restaurantID != nil && acting.OperatesRestaurant(*o.restaurantID)
}

func customerOwning(o *Order, acting *actor.Actor) bool {
	return acting.Role() == actor.RoleCustomer && o.customerID.IsEqual(acting.ID())
}

func platformOwner(_ *Order, acting *actor.Actor) bool {
	return acting.Role() == actor.RoleOwner
}

func anyDriver(_ *Order, acting *actor.Actor) bool {
	return acting.Role() == actor.RoleDriver
}

func assignedDriver(o *Order, acting *actor.Actor) bool {
	return acting.Role() == actor.RoleDriver &&
		o.driverID != nil &&
		o.driverID.IsEqual(acting.ID())
}

func anyOf(predicates ...func(*Order, *actor.Actor) bool) func(*Order, *actor.Actor) bool {
	return func(o *Order, acting *actor.Actor) bool {
		for _, p := range predicates {
			if p(o, acting) {
				return true
			}
		}
		return false
	}
}

func driverAbsent(o *Order) error {
	if o.driverID != nil {
		return errDriverAlreadyAssigned
	}
	return nil
}

func restaurantPresent(o *Order) error {
	if o.restaurantID == nil {
		return errOrderHasNoRestaurant
	}
	return nil
}

func parcelUnclaimed(o *Order) error {
	if o.restaurantID != nil {
		return errOrderHasRestaurant
	}
	return driverAbsent(o)
}

// getTransitionRules returns the declarative transition table of the order
// lifecycle. Every legal (from, to) edge appears here exactly once; the
// absence of an edge is what makes a transition illegal, so DELIVERED and
// CANCELLED are terminal simply by never appearing as a source.
//
// Cancellation policy: the owning restaurant admin or the owning customer
// may cancel a PENDING order, the owning admin may cancel after accepting,
// and the platform owner may cancel any order not yet picked up.
func getTransitionRules() map[edge]rule {
	return map[edge]rule{
		// Kitchen side.
		{StatusPending, StatusRestaurantAccepted}: {
			authorized: restaurantAdminOwning,
			available:  restaurantPresent,
		},
		{StatusRestaurantAccepted, StatusPreparing}: {
			authorized: restaurantAdminOwning,
		},
		{StatusPreparing, StatusReadyForPickup}: {
			authorized: restaurantAdminOwning,
		},

		// Courier side. A driver claims an order that is ready for pickup,
		// or a parcel order that never goes through a kitchen.
		{StatusReadyForPickup, StatusAccepted}: {
			authorized:    anyDriver,
			available:     driverAbsent,
			assignsDriver: true,
		},
		{StatusPending, StatusAccepted}: {
			authorized:    anyDriver,
			available:     parcelUnclaimed,
			assignsDriver: true,
		},
		{StatusAccepted, StatusPickedUp}: {
			authorized: assignedDriver,
		},
		{StatusPickedUp, StatusInTransit}: {
			authorized: assignedDriver,
		},
		{StatusInTransit, StatusDelivered}: {
			authorized: assignedDriver,
		},

		// Cancellations.
		{StatusPending, StatusCancelled}: {
			authorized: anyOf(restaurantAdminOwning, customerOwning, platformOwner),
		},
		{StatusRestaurantAccepted, StatusCancelled}: {
			authorized: anyOf(restaurantAdminOwning, platformOwner),
		},
		{StatusPreparing, StatusCancelled}: {
			authorized: platformOwner,
		},
		{StatusReadyForPickup, StatusCancelled}: {
			authorized: platformOwner,
		},
		{StatusAccepted, StatusCancelled}: {
			authorized: platformOwner,
		},
	}
}
