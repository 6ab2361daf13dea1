// Package queries contains read-only operations over the order store.
// Implements the Query side of the CQRS architecture: queries never modify
// state and return plain response structs, not aggregates.
package queries

import (
	"errors"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders visible to a marketplace actor. Nil filter
// fields match everything; the session layer narrows them by role (customers
// see their own orders, restaurant admins their restaurant's, drivers their
// assignments, the platform owner everything).
//
// Example:
//
//	query, _ := NewListOrdersQuery(&customerID, nil, nil, nil)
//	handler := NewListOrdersQueryHandler(repo)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID   *kernel.UUID
	restaurantID *kernel.UUID
	driverID     *kernel.UUID
	statuses     []order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for orders matching the given filters.
func NewListOrdersQuery(
	customerID, restaurantID, driverID *kernel.UUID,
	statuses []order.Status,
) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	for _, id := range []*kernel.UUID{customerID, restaurantID, driverID} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	query.customerID = customerID
	query.restaurantID = restaurantID
	query.driverID = driverID
	query.statuses = statuses
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, nil for any.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// RestaurantID returns the restaurant filter, nil for any.
func (q ListOrdersQuery) RestaurantID() *kernel.UUID {
	return q.restaurantID
}

// DriverID returns the driver filter, nil for any.
func (q ListOrdersQuery) DriverID() *kernel.UUID {
	return q.driverID
}

// Statuses returns the status filter, empty for any.
func (q ListOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// ListOrdersQueryResponse is one order in a listing: the fields the apps
// render on their order screens, flattened out of the aggregate.
type ListOrdersQueryResponse struct {
	ID            kernel.UUID
	Status        order.Status
	RestaurantID  *kernel.UUID
	DriverID      *kernel.UUID
	PaymentMethod order.PaymentMethod
	TotalFee      kernel.Money
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
