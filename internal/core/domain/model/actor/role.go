package actor

import (
	"fmt"

	"swiftdrop/internal/pkg/errs"
)

// Role identifies which of the four marketplace parties an actor acts as.
// Exactly one role is assigned per actor and it never changes after
// authentication.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleOwner is the platform owner. Owners observe every order and may
	// cancel any order that has not yet been picked up.
	RoleOwner

	// RoleRestaurantAdmin operates a single restaurant and drives the
	// kitchen side of the lifecycle: accept, prepare, ready for pickup.
	RoleRestaurantAdmin

	// RoleDriver delivers orders: accept, pick up, transit, deliver.
	RoleDriver

	// RoleCustomer builds carts, checks out and may cancel a pending order.
	RoleCustomer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "UNKNOWN",
		RoleOwner:           "OWNER",
		RoleRestaurantAdmin: "RESTAURANT_ADMIN",
		RoleDriver:          "DRIVER",
		RoleCustomer:        "CUSTOMER",
	}
}

// RoleFromString parses a role from its wire representation, for example
// "RESTAURANT_ADMIN". Returns an error for unknown names.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the four marketplace roles.
func (r Role) Validate() error {
	if r < RoleOwner || r > RoleCustomer {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, e.g. "DRIVER".
// Implements the fmt.Stringer interface and is safe to call on any Role
// value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
