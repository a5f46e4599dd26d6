package pos

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/retailpos/backend/internal/domain/finance"
	"github.com/retailpos/backend/internal/domain/pos"
	"github.com/retailpos/backend/internal/domain/shared"
)

const defaultRecentSalesLimit = 10

// DashboardService produces the shift dashboard: aggregate sales figures for
// the acting user's open shift plus the most recent invoices and receipts.
type DashboardService struct {
	shiftRepo   pos.ShiftRepository
	invoiceRepo pos.InvoiceRepository
	txRepo      finance.TransactionRepository
	reportRepo  pos.SaleReportRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(shiftRepo pos.ShiftRepository, invoiceRepo pos.InvoiceRepository, txRepo finance.TransactionRepository, reportRepo pos.SaleReportRepository) *DashboardService {
	return &DashboardService{
		shiftRepo:   shiftRepo,
		invoiceRepo: invoiceRepo,
		txRepo:      txRepo,
		reportRepo:  reportRepo,
	}
}

// Summary returns the aggregate figures for the acting user's open shift
func (s *DashboardService) Summary(ctx context.Context, tenantID, userID uuid.UUID) (*DashboardResponse, error) {
	shift, err := s.shiftRepo.FindOpenByUser(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoActiveShift
		}
		return nil, err
	}

	summary, err := s.reportRepo.ShiftSummary(ctx, tenantID, shift.ID)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Shift:        ToShiftResponse(shift),
		TotalSales:   summary.TotalSales,
		InvoiceCount: summary.InvoiceCount,
		PendingCount: summary.PendingCount,
		CashTotal:    summary.CashTotal,
		CardTotal:    summary.CardTotal,
	}, nil
}

// RecentSales returns the latest invoices of the acting user's open shift
func (s *DashboardService) RecentSales(ctx context.Context, tenantID, userID uuid.UUID, limit int) ([]RecentSaleResponse, error) {
	shift, err := s.shiftRepo.FindOpenByUser(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoActiveShift
		}
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = defaultRecentSalesLimit
	}

	invoices, err := s.invoiceRepo.FindRecentByShift(ctx, tenantID, shift.ID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]RecentSaleResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, ToRecentSaleResponse(&invoices[i]))
	}
	return responses, nil
}

// ShiftTransactions lists the money movements recorded under the acting
// user's open shift, oldest first. Used for the cash-drawer reconciliation
// view when the shift is counted.
func (s *DashboardService) ShiftTransactions(ctx context.Context, tenantID, userID uuid.UUID) ([]TransactionResponse, error) {
	shift, err := s.shiftRepo.FindOpenByUser(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoActiveShift
		}
		return nil, err
	}

	txs, err := s.txRepo.FindByShift(ctx, tenantID, shift.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, ToTransactionResponse(&txs[i]))
	}
	return responses, nil
}
