// Package memstore provides the authoritative in-memory order store.
//
// The marketplace holds live order state in process memory; the postgres
// adapter mirrors committed state for durability but is never read on the
// hot path. The store therefore carries the full concurrency discipline:
//
//   - A single RWMutex serializes commits; reads take the read lock and
//     return deep copies, so callers can never mutate committed state.
//   - Writes are optimistic. A unit of work stages clones of the aggregates
//     it touched and applies them atomically at Commit, where each staged
//     update is compare-and-swapped on the aggregate's version counter.
//     A writer whose base version is stale gets errs.ErrVersionConflict
//     and must re-read before retrying.
package memstore

import (
	"sync"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/pkg/errs"
)

// Store holds all committed order aggregates.
type Store struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
}

// NewStore creates an empty order store.
func NewStore() *Store {
	return &Store{
		orders: make(map[kernel.UUID]*order.Order),
	}
}

// get returns a clone of the committed aggregate.
func (s *Store) get(id kernel.UUID) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	committed, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return committed.Clone(), nil
}

// snapshot returns clones of every committed aggregate.
func (s *Store) snapshot() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*order.Order, 0, len(s.orders))
	for _, committed := range s.orders {
		orders = append(orders, committed.Clone())
	}
	return orders
}

// stagedUpdate pairs an aggregate with the committed version the writer
// based its change on.
type stagedUpdate struct {
	aggregate   *order.Order
	baseVersion int64
}

// apply commits a staged change set atomically. All version checks happen
// under the write lock, so two racing units of work cannot both win.
func (s *Store) apply(adds []*order.Order, updates []stagedUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, staged := range adds {
		if _, exists := s.orders[staged.ID()]; exists {
			return errs.NewValueIsInvalidError("orderID already exists: " + staged.ID().String())
		}
	}
	for _, staged := range updates {
		committed, ok := s.orders[staged.aggregate.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("orderID", staged.aggregate.ID())
		}
		if committed.Version() != staged.baseVersion {
			return errs.NewVersionConflictError(staged.aggregate.ID(), staged.baseVersion, committed.Version())
		}
	}

	for _, staged := range adds {
		s.orders[staged.ID()] = staged
	}
	for _, staged := range updates {
		s.orders[staged.aggregate.ID()] = staged.aggregate
	}
	return nil
}
