package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/shared"
)

// StockItem holds the current on-hand quantity for one
// (product, warehouse, location) triple.
type StockItem struct {
	shared.TenantAggregateRoot
	ProductID   uuid.UUID
	WarehouseID uuid.UUID
	LocationID  *uuid.UUID
	Quantity    decimal.Decimal
}

// NewStockItem creates a stock record for a product at a warehouse
func NewStockItem(tenantID, productID, warehouseID uuid.UUID, locationID *uuid.UUID, quantity decimal.Decimal) (*StockItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	if quantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	return &StockItem{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ProductID:           productID,
		WarehouseID:         warehouseID,
		LocationID:          locationID,
		Quantity:            quantity,
	}, nil
}

// CanFulfill reports whether the requested quantity is on hand
func (s *StockItem) CanFulfill(requested decimal.Decimal) bool {
	return s.Quantity.GreaterThanOrEqual(requested)
}

// Decrease removes stock, never going below zero
func (s *StockItem) Decrease(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if s.Quantity.LessThan(quantity) {
		return shared.ErrInsufficientStock
	}
	s.Quantity = s.Quantity.Sub(quantity)
	s.UpdatedAt = time.Now()
	return nil
}

// Increase adds stock
func (s *StockItem) Increase(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	s.Quantity = s.Quantity.Add(quantity)
	s.UpdatedAt = time.Now()
	return nil
}

// StockRepository defines persistence operations for stock levels
type StockRepository interface {
	// FindByProductAndWarehouse returns the stock record for an exact
	// product+warehouse match, or shared.ErrNotFound when the product has
	// never been stocked there.
	FindByProductAndWarehouse(ctx context.Context, tenantID, productID, warehouseID uuid.UUID) (*StockItem, error)
	Save(ctx context.Context, item *StockItem) error
}
