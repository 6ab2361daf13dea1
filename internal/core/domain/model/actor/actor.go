package actor

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

var (
	// ErrActorIsNotConstructed is returned when an Actor instance was not
	// created through one of the factory functions.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or NewRestaurantAdmin")

	// ErrRestaurantRequiredForAdmin is returned when a RESTAURANT_ADMIN actor
	// is constructed without the restaurant it operates.
	ErrRestaurantRequiredForAdmin = errors.New("restaurant admin must reference the restaurant it operates")

	// ErrRestaurantNotAllowedForRole is returned when a non-admin actor is
	// constructed with a restaurant reference.
	ErrRestaurantNotAllowedForRole = errors.New("only restaurant admins may reference a restaurant")
)

// Actor represents an authenticated identity in the marketplace.
//
// Actor follows these invariants:
//   - Must have a valid unique identifier and a non-empty name and email
//   - Has exactly one valid Role, assigned at construction and never changed
//   - A RESTAURANT_ADMIN carries the identifier of its restaurant; no other
//     role does
//
// Actors are immutable once authenticated: the struct exposes read accessors
// only and can be shared across goroutines.
type Actor struct {
	id           kernel.UUID
	name         string
	email        string
	role         Role
	restaurantID *kernel.UUID

	isConstructed bool
}

// NewActor creates an actor with one of the non-restaurant roles
// (OWNER, DRIVER, CUSTOMER). Use NewRestaurantAdmin for restaurant operators.
func NewActor(id kernel.UUID, name, email string, role Role) (*Actor, error) {
	if role == RoleRestaurantAdmin {
		return nil, ErrRestaurantRequiredForAdmin
	}
	return newActor(id, name, email, role, nil)
}

// NewRestaurantAdmin creates a RESTAURANT_ADMIN actor bound to the restaurant
// it operates. The restaurant identifier is required for the ownership checks
// of the order lifecycle.
func NewRestaurantAdmin(id kernel.UUID, name, email string, restaurantID kernel.UUID) (*Actor, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}
	return newActor(id, name, email, RoleRestaurantAdmin, &restaurantID)
}

func newActor(id kernel.UUID, name, email string, role Role, restaurantID *kernel.UUID) (*Actor, error) {
	a := &Actor{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	a.restaurantID = restaurantID
	return a, nil
}

// Validate ensures the Actor instance was properly constructed through one of
// the factory functions.
func (a *Actor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// IsEqual compares two actors by their unique identifiers.
func (a *Actor) IsEqual(other *Actor) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() kernel.UUID {
	return a.id
}

// Name returns the actor's display name.
func (a *Actor) Name() string {
	return a.name
}

// Email returns the identity the actor authenticated with.
func (a *Actor) Email() string {
	return a.email
}

// Role returns the actor's marketplace role.
func (a *Actor) Role() Role {
	return a.role
}

// RestaurantID returns the restaurant a RESTAURANT_ADMIN operates.
// Returns nil for every other role.
func (a *Actor) RestaurantID() *kernel.UUID {
	return a.restaurantID
}

// OperatesRestaurant reports whether the actor is the admin of the given
// restaurant.
func (a *Actor) OperatesRestaurant(restaurantID kernel.UUID) bool {
	return a.role == RoleRestaurantAdmin &&
		a.restaurantID != nil &&
		a.restaurantID.IsEqual(restaurantID)
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Actor) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	a.email = email
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
