package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/actor"
	"swiftdrop/internal/core/domain/model/catalog"
	"swiftdrop/internal/core/domain/model/kernel"
)

// ReferenceCatalog provides read access to the restaurant and menu reference
// data the pricing engine resolves selections against.
type ReferenceCatalog interface {
	// GetRestaurant retrieves a restaurant by id.
	// Returns errs.ErrObjectNotFound for unknown ids.
	GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)

	// GetMenuItem retrieves a menu item by id.
	// Returns errs.ErrObjectNotFound for unknown ids.
	GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)
}

// ActorDirectory resolves login identities to marketplace actors.
type ActorDirectory interface {
	// FindByEmail retrieves the actor registered under the given email.
	// Returns errs.ErrObjectNotFound for unknown emails.
	FindByEmail(ctx context.Context, email string) (*actor.Actor, error)
}
