// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"swiftdrop/internal/core/domain/model/cart"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The line snapshot is denormalized into a JSON column: lines are immutable
// once priced, so they are never queried relationally.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID   *uuid.UUID `gorm:"type:uuid;index"`
	DriverID       *uuid.UUID `gorm:"type:uuid;index"`
	Lines          datatypes.JSON
	PickupAddress  string
	DropoffAddress string
	Status         string `gorm:"index"`
	PaymentMethod  string
	FoodSubtotal   decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee    decimal.Decimal `gorm:"type:numeric(12,2)"`
	ServiceFee     decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalFee       decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// lineDTO is the JSON shape of one priced cart line.
type lineDTO struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unitPrice"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var restaurantID, driverID *uuid.UUID
	if id := aggregate.RestaurantID(); id != nil {
		raw := id.Bytes()
		restaurantID = &raw
	}
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	lineDTOs := make([]lineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lineDTOs = append(lineDTOs, lineDTO{
			MenuItemID: line.MenuItemID().String(),
			Name:       line.Name(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice().String(),
		})
	}
	lines, err := json.Marshal(lineDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	totals := aggregate.Totals()
	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		RestaurantID:   restaurantID,
		DriverID:       driverID,
		Lines:          datatypes.JSON(lines),
		PickupAddress:  aggregate.PickupAddress(),
		DropoffAddress: aggregate.DropoffAddress(),
		Status:         aggregate.Status().String(),
		PaymentMethod:  aggregate.PaymentMethod().String(),
		FoodSubtotal:   totals.FoodSubtotal().Decimal(),
		DeliveryFee:    totals.DeliveryFee().Decimal(),
		ServiceFee:     totals.ServiceFee().Decimal(),
		TotalFee:       totals.TotalFee().Decimal(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Version:        aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstruction goes through RestoreOrder, so a corrupt row cannot become
// a live aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var restaurantID, driverID *kernel.UUID
	if dto.RestaurantID != nil {
		rID, restErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if restErr != nil {
			return nil, restErr
		}
		restaurantID = &rID
	}
	if dto.DriverID != nil {
		dID, drvErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if drvErr != nil {
			return nil, drvErr
		}
		driverID = &dID
	}

	var lineDTOs []lineDTO
	if len(dto.Lines) > 0 {
		if err = json.Unmarshal(dto.Lines, &lineDTOs); err != nil {
			return nil, err
		}
	}
	lines := make([]cart.Line, 0, len(lineDTOs))
	for _, l := range lineDTOs {
		menuItemID, lineErr := kernel.UUIDFromString(l.MenuItemID)
		if lineErr != nil {
			return nil, lineErr
		}
		unitPrice, lineErr := kernel.MoneyFromString(l.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		line, lineErr := cart.NewLine(menuItemID, l.Name, l.Quantity, unitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	totals, err := order.RestoreTotals(
		kernel.NewMoney(dto.FoodSubtotal),
		kernel.NewMoney(dto.DeliveryFee),
		kernel.NewMoney(dto.ServiceFee),
		kernel.NewMoney(dto.TotalFee),
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, restaurantID, driverID,
		lines,
		dto.PickupAddress, dto.DropoffAddress,
		status, paymentMethod, totals,
		dto.CreatedAt, dto.UpdatedAt,
		dto.Version,
	)
}
