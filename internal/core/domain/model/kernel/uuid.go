package kernel

import (
	"fmt"

	"swiftdrop/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through one of the constructor functions.
// This error is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object identifying every entity in the marketplace: orders,
// actors, restaurants, menu items, variations and modifiers. It wraps
// github.com/google/uuid to keep the identifier immutable and to force
// construction through a factory function.
//
// The zero value of UUID is invalid and fails Validate. Construct one with
// NewUUID, UUIDFromString, or UUIDFromBytes.
//
// UUID is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Assign a fresh identifier at checkout
//	orderID := kernel.NewUUID()
//
//	// Rehydrate a seeded menu item id
//	itemID, err := kernel.UUIDFromString("2c57fdd2-3333-4c83-9a4d-2f8c8c3f0001")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// This is how new orders and cart lines get their identity; seeded reference
// data uses UUIDFromString with fixed values instead.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	fmt.Println(orderID.String()) // e.g., "550e8400-e29b-41d4-a716-446655440000"
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts standard UUID formats including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Returns an error if the string is not a valid UUID format. Used when
// parsing identifiers off the wire and when declaring the seed fixtures.
//
// Example:
//
//	restaurantID, err := kernel.UUIDFromString("1b46ecc1-2222-4b72-8f3c-1e7b7b2f0001")
//	if err != nil {
//	    return fmt.Errorf("invalid restaurant ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a byte slice.
// The byte slice must be exactly 16 bytes long.
// Returns an error if the byte slice is not valid for UUID construction.
//
// The postgres adapter and the generated HTTP layer both carry identifiers
// as raw uuid.UUID values; this is the path back into the domain type.
//
// Example:
//
//	orderID, err := kernel.UUIDFromBytes(dto.ID[:])
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the standard string representation of the UUID,
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx". For a zero value UUID this is
// "00000000-0000-0000-0000-000000000000".
//
// Used for logging, JSON responses and error messages (NotFound and
// VersionConflict both report the order id as text).
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying UUID value.
// Note: This returns the internal uuid.UUID type, not a byte slice.
// For a byte slice representation, use id.Bytes()[:].
//
// The gorm DTO mapping stores identifiers in this form. Outside the
// adapters, prefer the domain type to keep encapsulation.
//
// Example:
//
//	dto.CustomerID = aggregate.CustomerID().Bytes()
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs for equality.
// Returns true if both UUIDs represent the same value, false otherwise.
//
// Example:
//
//	if acting.ID().IsEqual(*o.DriverID()) {
//	    // the acting driver owns this order
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks if the UUID is properly constructed.
// Returns ErrUUIDIsNotConstructed if the UUID is a zero value (nil UUID).
// A valid UUID is any UUID that was created through one of the constructor functions.
//
// Entity constructors call this on every identifier they receive, so a
// zero-value id never reaches the store.
//
// Example:
//
//	func NewLine(menuItemID kernel.UUID, ...) (Line, error) {
//	    if err := menuItemID.Validate(); err != nil {
//	        return Line{}, err
//	    }
//	    // ...
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
