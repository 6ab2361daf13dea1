package queries

import (
	"context"

	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/core/ports"
)

// OrderReader is the read-side slice of the order repository the listing
// query needs. ports.OrderRepository satisfies it.
type OrderReader interface {
	List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error)
}

// ListOrdersQueryHandler retrieves order listings from the authoritative
// store. Reads see only committed state.
type ListOrdersQueryHandler struct {
	reader OrderReader
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(reader OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

// Handle executes the listing query and flattens the matching aggregates
// into response structs, newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.reader.List(ctx, ports.OrderFilter{
		CustomerID:   query.CustomerID(),
		RestaurantID: query.RestaurantID(),
		DriverID:     query.DriverID(),
		Statuses:     query.Statuses(),
	})
	if err != nil {
		return nil, err
	}

	orders := make([]ListOrdersQueryResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		orders = append(orders, ListOrdersQueryResponse{
			ID:            aggregate.ID(),
			Status:        aggregate.Status(),
			RestaurantID:  aggregate.RestaurantID(),
			DriverID:      aggregate.DriverID(),
			PaymentMethod: aggregate.PaymentMethod(),
			TotalFee:      aggregate.Totals().TotalFee(),
			CreatedAt:     aggregate.CreatedAt(),
			UpdatedAt:     aggregate.UpdatedAt(),
		})
	}

	return orders, nil
}
