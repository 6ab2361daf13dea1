package memstore

import (
	"context"
	"errors"
	"sort"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/core/ports"
)

var (
	ErrTransactionNotStarted     = errors.New("transaction not started")
	ErrTransactionAlreadyStarted = errors.New("transaction already started")
)

// UnitOfWorkFactory creates memstore-backed unit of work instances.
// All instances share the same underlying store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a fresh unit of work with empty staging.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:        f.store,
		baseVersions: make(map[kernel.UUID]int64),
	}
}

// UnitOfWork stages order changes and applies them atomically at Commit.
//
// Reads go straight to committed state. Writes are buffered: Add and Update
// clone the aggregate at call time, so later mutations by the caller do not
// leak into the store. Get remembers the version each aggregate had when
// this unit of work read it; Commit swaps against that base.
type UnitOfWork struct {
	store        *Store
	active       bool
	adds         []*order.Order
	updates      []stagedUpdate
	baseVersions map[kernel.UUID]int64
}

// Begin starts the business transaction.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return ErrTransactionAlreadyStarted
	}
	u.active = true
	return nil
}

// Commit atomically applies all staged changes. Returns
// errs.ErrVersionConflict when another writer committed first.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrTransactionNotStarted
	}

	if err := u.store.apply(u.adds, u.updates); err != nil {
		return err
	}

	u.reset()
	return nil
}

// Rollback discards all staged changes. Safe to call after Commit; a
// rollback with nothing staged is a no-op, mirroring the deferred-rollback
// idiom in the command handlers.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	u.reset()
	return nil
}

// OrderRepository returns the repository bound to this unit of work.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) reset() {
	u.active = false
	u.adds = nil
	u.updates = nil
	u.baseVersions = make(map[kernel.UUID]int64)
}

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// OrderRepository implements ports.OrderRepository over the in-memory store.
type OrderRepository struct {
	uow *UnitOfWork
}

// Add stages a new aggregate for insertion at Commit.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrTransactionNotStarted
	}

	r.uow.adds = append(r.uow.adds, aggregate.Clone())
	return nil
}

// Update stages an aggregate change for the compare-and-swap at Commit.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrTransactionNotStarted
	}

	staged := aggregate.Clone()
	base, ok := r.uow.baseVersions[staged.ID()]
	if !ok {
		base = staged.Version() - 1
	}
	r.uow.updates = append(r.uow.updates, stagedUpdate{aggregate: staged, baseVersion: base})
	return nil
}

// Get reads committed state, remembering the version for conflict detection.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	aggregate, err := r.uow.store.get(id)
	if err != nil {
		return nil, err
	}

	r.uow.baseVersions[id] = aggregate.Version()
	return aggregate, nil
}

// List returns committed orders matching the filter, newest first.
func (r *OrderRepository) List(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)
	for _, aggregate := range r.uow.store.snapshot() {
		if matchesFilter(aggregate, filter) {
			orders = append(orders, aggregate)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})
	return orders, nil
}

// GetAllPendingBefore returns committed PENDING orders created at or before
// the cutoff, oldest first.
func (r *OrderRepository) GetAllPendingBefore(_ context.Context, cutoff time.Time) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)
	for _, aggregate := range r.uow.store.snapshot() {
		if aggregate.Status() == order.StatusPending && !aggregate.CreatedAt().After(cutoff) {
			orders = append(orders, aggregate)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().Before(orders[j].CreatedAt())
	})
	return orders, nil
}

var _ ports.OrderRepository = (*OrderRepository)(nil)

func matchesFilter(aggregate *order.Order, filter ports.OrderFilter) bool {
	if filter.CustomerID != nil && !aggregate.CustomerID().IsEqual(*filter.CustomerID) {
		return false
	}
	if filter.RestaurantID != nil {
		if aggregate.RestaurantID() == nil || !aggregate.RestaurantID().IsEqual(*filter.RestaurantID) {
			return false
		}
	}
	if filter.DriverID != nil {
		if aggregate.DriverID() == nil || !aggregate.DriverID().IsEqual(*filter.DriverID) {
			return false
		}
	}
	if len(filter.Statuses) > 0 {
		matched := false
		for _, status := range filter.Statuses {
			if aggregate.Status() == status {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
