package ports

import (
	"context"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
)

// OrderFilter narrows List results. Nil fields match everything; an empty
// Statuses slice matches every status.
type OrderFilter struct {
	CustomerID   *kernel.UUID
	RestaurantID *kernel.UUID
	DriverID     *kernel.UUID
	Statuses     []order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
//
// Update is compare-and-swap on the aggregate version: the store applies the
// write only when the stored version is exactly one below the aggregate's,
// and returns errs.ErrVersionConflict otherwise. Callers losing the race must
// re-read and re-validate before retrying.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by the
	// aggregate's version counter.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List retrieves the orders matching the filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// GetAllPendingBefore retrieves PENDING orders created at or before the
	// cutoff. Used by the stale-order sweep.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
