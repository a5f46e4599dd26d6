package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/finance"
)

// TransactionModel is the persistence model for the financial Transaction
// aggregate root. Rows are append-only.
type TransactionModel struct {
	TenantAggregateModel
	Code            string                  `gorm:"type:varchar(50);not null;uniqueIndex:idx_transactions_tenant_code,priority:2"`
	Type            finance.TransactionType `gorm:"type:varchar(20);not null;index"`
	InvoiceID       *uuid.UUID              `gorm:"type:uuid;index"`
	CustomerID      *uuid.UUID              `gorm:"type:uuid;index"`
	ShiftID         uuid.UUID               `gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID               `gorm:"type:uuid;not null"`
	Amount          decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	Method          string                  `gorm:"type:varchar(20)"`
	Notes           string                  `gorm:"type:varchar(500)"`
	TransactionDate time.Time               `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction
func (m *TransactionModel) ToDomain() *finance.Transaction {
	tx := &finance.Transaction{
		Code:            m.Code,
		Type:            m.Type,
		InvoiceID:       m.InvoiceID,
		CustomerID:      m.CustomerID,
		ShiftID:         m.ShiftID,
		UserID:          m.UserID,
		Amount:          m.Amount,
		Method:          m.Method,
		Notes:           m.Notes,
		TransactionDate: m.TransactionDate,
	}
	m.PopulateTenantAggregateRoot(&tx.TenantAggregateRoot)
	return tx
}

// FromDomain populates the persistence model from a domain Transaction
func (m *TransactionModel) FromDomain(tx *finance.Transaction) {
	m.FromDomainTenantAggregateRoot(tx.TenantAggregateRoot)
	m.Code = tx.Code
	m.Type = tx.Type
	m.InvoiceID = tx.InvoiceID
	m.CustomerID = tx.CustomerID
	m.ShiftID = tx.ShiftID
	m.UserID = tx.UserID
	m.Amount = tx.Amount
	m.Method = tx.Method
	m.Notes = tx.Notes
	m.TransactionDate = tx.TransactionDate
}

// TransactionModelFromDomain creates a new persistence model from a domain Transaction
func TransactionModelFromDomain(tx *finance.Transaction) *TransactionModel {
	m := &TransactionModel{}
	m.FromDomain(tx)
	return m
}
