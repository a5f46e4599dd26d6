package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/retailpos/backend/internal/domain/pos"
)

// GormSaleReportRepository implements pos.SaleReportRepository with
// aggregate queries over the invoices table
type GormSaleReportRepository struct {
	db *gorm.DB
}

// NewGormSaleReportRepository creates a new GormSaleReportRepository
func NewGormSaleReportRepository(db *gorm.DB) *GormSaleReportRepository {
	return &GormSaleReportRepository{db: db}
}

type shiftSummaryRow struct {
	TotalSales   decimal.Decimal
	InvoiceCount int64
	PendingCount int64
	CashTotal    decimal.Decimal
	CardTotal    decimal.Decimal
}

// ShiftSummary computes the aggregate sales figures for one shift
func (r *GormSaleReportRepository) ShiftSummary(ctx context.Context, tenantID, shiftID uuid.UUID) (*pos.ShiftSummary, error) {
	var row shiftSummaryRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_amount), 0)                                          AS total_sales,
			COUNT(*)                                                                AS invoice_count,
			COUNT(*) FILTER (WHERE status = 'pending')                              AS pending_count,
			COALESCE(SUM(paid_amount) FILTER (WHERE payment_method = 'cash'), 0)    AS cash_total,
			COALESCE(SUM(paid_amount) FILTER (WHERE payment_method = 'card'), 0)    AS card_total
		FROM invoices
		WHERE tenant_id = ? AND shift_id = ?`,
		tenantID, shiftID,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &pos.ShiftSummary{
		TotalSales:   row.TotalSales,
		InvoiceCount: row.InvoiceCount,
		PendingCount: row.PendingCount,
		CashTotal:    row.CashTotal,
		CardTotal:    row.CardTotal,
	}, nil
}

var _ pos.SaleReportRepository = (*GormSaleReportRepository)(nil)
