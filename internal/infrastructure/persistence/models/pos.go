package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/pos"
)

// ShiftModel is the persistence model for the Shift aggregate root.
type ShiftModel struct {
	TenantAggregateModel
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_shifts_tenant_user,priority:2"`
	WarehouseID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status       pos.ShiftStatus `gorm:"type:varchar(20);not null;default:'OPEN';index"`
	OpeningFloat decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	OpenedAt     time.Time       `gorm:"not null"`
	ClosedAt     *time.Time
}

// TableName returns the table name for GORM
func (ShiftModel) TableName() string {
	return "shifts"
}

// ToDomain converts the persistence model to a domain Shift
func (m *ShiftModel) ToDomain() *pos.Shift {
	shift := &pos.Shift{
		UserID:       m.UserID,
		WarehouseID:  m.WarehouseID,
		Status:       m.Status,
		OpeningFloat: m.OpeningFloat,
		OpenedAt:     m.OpenedAt,
		ClosedAt:     m.ClosedAt,
	}
	m.PopulateTenantAggregateRoot(&shift.TenantAggregateRoot)
	return shift
}

// FromDomain populates the persistence model from a domain Shift
func (m *ShiftModel) FromDomain(s *pos.Shift) {
	m.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	m.UserID = s.UserID
	m.WarehouseID = s.WarehouseID
	m.Status = s.Status
	m.OpeningFloat = s.OpeningFloat
	m.OpenedAt = s.OpenedAt
	m.ClosedAt = s.ClosedAt
}

// ShiftModelFromDomain creates a new persistence model from a domain Shift
func ShiftModelFromDomain(s *pos.Shift) *ShiftModel {
	m := &ShiftModel{}
	m.FromDomain(s)
	return m
}

// InvoiceModel is the persistence model for the Invoice aggregate root.
type InvoiceModel struct {
	TenantAggregateModel
	Code           string             `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoices_tenant_code,priority:2"`
	CustomerID     *uuid.UUID         `gorm:"type:uuid;index"`
	CustomerName   string             `gorm:"type:varchar(200)"`
	UserID         uuid.UUID          `gorm:"type:uuid;not null;index"`
	ShiftID        uuid.UUID          `gorm:"type:uuid;not null;index"`
	WarehouseID    uuid.UUID          `gorm:"type:uuid;not null;index"`
	Items          []InvoiceItemModel `gorm:"foreignKey:InvoiceID;references:ID"`
	Subtotal       decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	TaxAmount      decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountAmount decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount    decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	PaidAmount     decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentMethod  pos.PaymentMethod  `gorm:"type:varchar(20)"`
	Status         pos.InvoiceStatus  `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes          string             `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice
func (m *InvoiceModel) ToDomain() *pos.Invoice {
	invoice := &pos.Invoice{
		Code:           m.Code,
		CustomerID:     m.CustomerID,
		CustomerName:   m.CustomerName,
		UserID:         m.UserID,
		ShiftID:        m.ShiftID,
		WarehouseID:    m.WarehouseID,
		Subtotal:       m.Subtotal,
		TaxAmount:      m.TaxAmount,
		DiscountAmount: m.DiscountAmount,
		TotalAmount:    m.TotalAmount,
		PaidAmount:     m.PaidAmount,
		PaymentMethod:  m.PaymentMethod,
		Status:         m.Status,
		Notes:          m.Notes,
		Items:          make([]pos.InvoiceItem, len(m.Items)),
	}
	m.PopulateTenantAggregateRoot(&invoice.TenantAggregateRoot)
	for i := range m.Items {
		invoice.Items[i] = *m.Items[i].ToDomain()
	}
	return invoice
}

// FromDomain populates the persistence model from a domain Invoice
func (m *InvoiceModel) FromDomain(inv *pos.Invoice) {
	m.FromDomainTenantAggregateRoot(inv.TenantAggregateRoot)
	m.Code = inv.Code
	m.CustomerID = inv.CustomerID
	m.CustomerName = inv.CustomerName
	m.UserID = inv.UserID
	m.ShiftID = inv.ShiftID
	m.WarehouseID = inv.WarehouseID
	m.Subtotal = inv.Subtotal
	m.TaxAmount = inv.TaxAmount
	m.DiscountAmount = inv.DiscountAmount
	m.TotalAmount = inv.TotalAmount
	m.PaidAmount = inv.PaidAmount
	m.PaymentMethod = inv.PaymentMethod
	m.Status = inv.Status
	m.Notes = inv.Notes
	m.Items = make([]InvoiceItemModel, len(inv.Items))
	for i := range inv.Items {
		m.Items[i] = *InvoiceItemModelFromDomain(&inv.Items[i])
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice
func InvoiceModelFromDomain(inv *pos.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// InvoiceItemModel is the persistence model for the InvoiceItem entity.
type InvoiceItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	ProductCode string          `gorm:"type:varchar(50);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LocationID  *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the persistence model to a domain InvoiceItem
func (m *InvoiceItemModel) ToDomain() *pos.InvoiceItem {
	return &pos.InvoiceItem{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		ProductCode: m.ProductCode,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TaxRate:     m.TaxRate,
		TaxAmount:   m.TaxAmount,
		Subtotal:    m.Subtotal,
		TotalAmount: m.TotalAmount,
		LocationID:  m.LocationID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// InvoiceItemModelFromDomain creates a new persistence model from a domain InvoiceItem
func InvoiceItemModelFromDomain(item *pos.InvoiceItem) *InvoiceItemModel {
	return &InvoiceItemModel{
		ID:          item.ID,
		InvoiceID:   item.InvoiceID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		ProductCode: item.ProductCode,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		TaxRate:     item.TaxRate,
		TaxAmount:   item.TaxAmount,
		Subtotal:    item.Subtotal,
		TotalAmount: item.TotalAmount,
		LocationID:  item.LocationID,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
