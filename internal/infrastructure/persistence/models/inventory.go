package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/inventory"
)

// StockItemModel is the persistence model for the StockItem aggregate root.
type StockItemModel struct {
	TenantAggregateModel
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_tenant_product_wh,priority:2"`
	WarehouseID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_tenant_product_wh,priority:3"`
	LocationID  *uuid.UUID      `gorm:"type:uuid"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (StockItemModel) TableName() string {
	return "stock_items"
}

// ToDomain converts the persistence model to a domain StockItem
func (m *StockItemModel) ToDomain() *inventory.StockItem {
	item := &inventory.StockItem{
		ProductID:   m.ProductID,
		WarehouseID: m.WarehouseID,
		LocationID:  m.LocationID,
		Quantity:    m.Quantity,
	}
	m.PopulateTenantAggregateRoot(&item.TenantAggregateRoot)
	return item
}

// FromDomain populates the persistence model from a domain StockItem
func (m *StockItemModel) FromDomain(item *inventory.StockItem) {
	m.FromDomainTenantAggregateRoot(item.TenantAggregateRoot)
	m.ProductID = item.ProductID
	m.WarehouseID = item.WarehouseID
	m.LocationID = item.LocationID
	m.Quantity = item.Quantity
}

// StockItemModelFromDomain creates a new persistence model from a domain StockItem
func StockItemModelFromDomain(item *inventory.StockItem) *StockItemModel {
	m := &StockItemModel{}
	m.FromDomain(item)
	return m
}

// StockMovementModel is the persistence model for the StockMovement audit entry.
// Rows are append-only; nothing updates them after insert.
type StockMovementModel struct {
	ID            uuid.UUID              `gorm:"type:uuid;primary_key"`
	TenantID      uuid.UUID              `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID              `gorm:"type:uuid;not null;index"`
	WarehouseID   uuid.UUID              `gorm:"type:uuid;not null;index"`
	LocationID    *uuid.UUID             `gorm:"type:uuid"`
	MovementType  inventory.MovementType `gorm:"type:varchar(20);not null"`
	Quantity      decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	BalanceBefore decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	BalanceAfter  decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	SourceType    inventory.SourceType   `gorm:"type:varchar(20);not null;index:idx_inv_tx_source,priority:1"`
	SourceID      uuid.UUID              `gorm:"type:uuid;not null;index:idx_inv_tx_source,priority:2"`
	SourceLineID  *uuid.UUID             `gorm:"type:uuid"`
	OccurredAt    time.Time              `gorm:"not null;index"`
	CreatedAt     time.Time              `gorm:"not null"`
	UpdatedAt     time.Time              `gorm:"not null"`
}

// TableName returns the table name for GORM
func (StockMovementModel) TableName() string {
	return "inventory_transactions"
}

// ToDomain converts the persistence model to a domain StockMovement
func (m *StockMovementModel) ToDomain() *inventory.StockMovement {
	mv := &inventory.StockMovement{
		TenantID:      m.TenantID,
		ProductID:     m.ProductID,
		WarehouseID:   m.WarehouseID,
		LocationID:    m.LocationID,
		MovementType:  m.MovementType,
		Quantity:      m.Quantity,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		SourceType:    m.SourceType,
		SourceID:      m.SourceID,
		SourceLineID:  m.SourceLineID,
		OccurredAt:    m.OccurredAt,
	}
	mv.ID = m.ID
	mv.CreatedAt = m.CreatedAt
	mv.UpdatedAt = m.UpdatedAt
	return mv
}

// StockMovementModelFromDomain creates a new persistence model from a domain StockMovement
func StockMovementModelFromDomain(mv *inventory.StockMovement) *StockMovementModel {
	return &StockMovementModel{
		ID:            mv.ID,
		TenantID:      mv.TenantID,
		ProductID:     mv.ProductID,
		WarehouseID:   mv.WarehouseID,
		LocationID:    mv.LocationID,
		MovementType:  mv.MovementType,
		Quantity:      mv.Quantity,
		BalanceBefore: mv.BalanceBefore,
		BalanceAfter:  mv.BalanceAfter,
		SourceType:    mv.SourceType,
		SourceID:      mv.SourceID,
		SourceLineID:  mv.SourceLineID,
		OccurredAt:    mv.OccurredAt,
		CreatedAt:     mv.CreatedAt,
		UpdatedAt:     mv.UpdatedAt,
	}
}
