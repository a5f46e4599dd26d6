package pos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/finance"
)

// ShiftRepository defines persistence operations for shifts
type ShiftRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Shift, error)
	// FindOpenByUser returns the user's currently open shift, or
	// shared.ErrNotFound when the user has none.
	FindOpenByUser(ctx context.Context, tenantID, userID uuid.UUID) (*Shift, error)
	Save(ctx context.Context, shift *Shift) error
}

// InvoiceRepository defines persistence operations for invoices
type InvoiceRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Invoice, error)
	FindRecentByShift(ctx context.Context, tenantID, shiftID uuid.UUID, limit int) ([]Invoice, error)
	// NextCode reserves the next sequential invoice code for the month of
	// issuedAt (e.g. INV-2026090001). The reservation is atomic: two
	// concurrent sales never receive the same code.
	NextCode(ctx context.Context, tenantID uuid.UUID, issuedAt time.Time) (string, error)
}

// SaleRecorder persists all effects of one quick sale as a single atomic
// unit: the invoice with its items, one stock decrement and one outbound
// movement per line item, and the optional receipt. Either everything is
// committed or nothing is.
type SaleRecorder interface {
	RecordSale(ctx context.Context, invoice *Invoice, receipt *finance.Transaction) error
}

// ShiftSummary holds the aggregate sales figures for one shift
type ShiftSummary struct {
	TotalSales   decimal.Decimal
	InvoiceCount int64
	PendingCount int64
	CashTotal    decimal.Decimal
	CardTotal    decimal.Decimal
}

// SaleReportRepository exposes read-only aggregates over recorded sales
type SaleReportRepository interface {
	ShiftSummary(ctx context.Context, tenantID, shiftID uuid.UUID) (*ShiftSummary, error)
}
