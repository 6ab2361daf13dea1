package catalog

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through the NewRestaurant factory function.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is reference data describing a food vendor on the platform.
// The core reads it to resolve pickup addresses, fee zones and admin
// ownership; it never changes a restaurant.
type Restaurant struct {
	id      kernel.UUID
	name    string
	address string
	zone    string
	ownerID kernel.UUID

	isConstructed bool
}

// NewRestaurant creates a restaurant reference entry. The owner identifier is
// the actor id of the restaurant admin operating it.
func NewRestaurant(id kernel.UUID, name, address, zone string, ownerID kernel.UUID) (*Restaurant, error) {
	r := &Restaurant{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setAddress(address),
		r.setZone(zone),
		r.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Restaurant was created via NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the street address orders are picked up from.
func (r *Restaurant) Address() string {
	return r.address
}

// Zone returns the delivery zone used by the fee schedule.
func (r *Restaurant) Zone() string {
	return r.zone
}

// OwnerID returns the actor id of the admin operating this restaurant.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}

func (r *Restaurant) setZone(zone string) error {
	if zone == "" {
		return errs.NewValueIsRequiredError("zone")
	}
	r.zone = zone
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	r.ownerID = ownerID
	return nil
}
