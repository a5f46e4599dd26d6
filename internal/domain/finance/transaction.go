package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/domain/shared/valueobject"
)

// TransactionType distinguishes money coming in from money going out
type TransactionType string

const (
	TransactionTypeReceipt TransactionType = "receipt"
	TransactionTypePayment TransactionType = "payment"
)

// Transaction records one monetary movement tied to a source document.
// Transactions are append-only; they are never updated after creation.
type Transaction struct {
	shared.TenantAggregateRoot
	Code            string
	Type            TransactionType
	InvoiceID       *uuid.UUID
	CustomerID      *uuid.UUID
	ShiftID         uuid.UUID
	UserID          uuid.UUID
	Amount          decimal.Decimal
	Method          string
	Notes           string
	TransactionDate time.Time
}

// NewReceipt creates a receipt transaction for a paid invoice
func NewReceipt(tenantID uuid.UUID, code string, invoiceID uuid.UUID, customerID *uuid.UUID, shiftID, userID uuid.UUID, amount valueobject.Money, method string) (*Transaction, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Transaction code cannot be empty")
	}
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Invoice ID cannot be empty")
	}
	if shiftID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHIFT", "Shift ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Receipt amount must be positive")
	}

	return &Transaction{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Type:                TransactionTypeReceipt,
		InvoiceID:           &invoiceID,
		CustomerID:          customerID,
		ShiftID:             shiftID,
		UserID:              userID,
		Amount:              amount.Amount(),
		Method:              method,
		TransactionDate:     time.Now(),
	}, nil
}

// TransactionRepository defines persistence operations for financial
// transactions. Rows are written inside the sale unit of work, so the
// contract only covers code reservation and shift-scoped reads.
type TransactionRepository interface {
	FindByShift(ctx context.Context, tenantID, shiftID uuid.UUID) ([]Transaction, error)
	// NextCode reserves the next sequential receipt code for the month of
	// issuedAt (e.g. RCPT-2026090001) using the same atomic counter scheme
	// as invoice codes.
	NextCode(ctx context.Context, tenantID uuid.UUID, issuedAt time.Time) (string, error)
}
