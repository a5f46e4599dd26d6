package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/shared"
)

// MovementType classifies a stock movement
type MovementType string

const (
	MovementTypeIn         MovementType = "in"
	MovementTypeOut        MovementType = "out"
	MovementTypeAdjustment MovementType = "adjustment"
)

// SourceType names the document that caused a movement
type SourceType string

const (
	SourceTypeInvoice    SourceType = "invoice"
	SourceTypeAdjustment SourceType = "adjustment"
)

// StockMovement is one append-only audit entry recording a quantity change
// against a stock item, tied to the document that caused it.
type StockMovement struct {
	shared.BaseEntity
	TenantID      uuid.UUID
	ProductID     uuid.UUID
	WarehouseID   uuid.UUID
	LocationID    *uuid.UUID
	MovementType  MovementType
	Quantity      decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	SourceType    SourceType
	SourceID      uuid.UUID
	SourceLineID  *uuid.UUID
	OccurredAt    time.Time
}

// NewOutMovement creates an outbound movement caused by a sale line item
func NewOutMovement(tenantID, productID, warehouseID uuid.UUID, locationID *uuid.UUID, quantity, balanceBefore decimal.Decimal, sourceType SourceType, sourceID uuid.UUID, sourceLineID *uuid.UUID) (*StockMovement, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Movement quantity must be positive")
	}
	if sourceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOURCE", "Movement source cannot be empty")
	}

	return &StockMovement{
		BaseEntity:    shared.NewBaseEntity(),
		TenantID:      tenantID,
		ProductID:     productID,
		WarehouseID:   warehouseID,
		LocationID:    locationID,
		MovementType:  MovementTypeOut,
		Quantity:      quantity,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceBefore.Sub(quantity),
		SourceType:    sourceType,
		SourceID:      sourceID,
		SourceLineID:  sourceLineID,
		OccurredAt:    time.Now(),
	}, nil
}
