package pos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/retailpos/backend/internal/domain/finance"
	"github.com/retailpos/backend/internal/domain/pos"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/domain/shared/valueobject"
)

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	t.Run("returns shift aggregates", func(t *testing.T) {
		shift, err := pos.NewShift(tenantID, userID, uuid.New(), decimal.Zero)
		require.NoError(t, err)

		shiftRepo := new(MockShiftRepository)
		invoiceRepo := new(MockInvoiceRepository)
		reportRepo := new(MockSaleReportRepository)
		shiftRepo.On("FindOpenByUser", mock.Anything, tenantID, userID).Return(shift, nil)
		reportRepo.On("ShiftSummary", mock.Anything, tenantID, shift.ID).Return(&pos.ShiftSummary{
			TotalSales:   decimal.NewFromInt(1250),
			InvoiceCount: 14,
			PendingCount: 2,
			CashTotal:    decimal.NewFromInt(800),
			CardTotal:    decimal.NewFromInt(450),
		}, nil)

		svc := NewDashboardService(shiftRepo, invoiceRepo, new(MockTransactionRepository), reportRepo)
		resp, err := svc.Summary(ctx, tenantID, userID)
		require.NoError(t, err)
		assert.Equal(t, shift.ID, resp.Shift.ID)
		assert.True(t, resp.TotalSales.Equal(decimal.NewFromInt(1250)))
		assert.Equal(t, int64(14), resp.InvoiceCount)
		assert.Equal(t, int64(2), resp.PendingCount)
	})

	t.Run("no open shift fails", func(t *testing.T) {
		shiftRepo := new(MockShiftRepository)
		shiftRepo.On("FindOpenByUser", mock.Anything, tenantID, userID).Return(nil, shared.ErrNotFound)

		svc := NewDashboardService(shiftRepo, new(MockInvoiceRepository), new(MockTransactionRepository), new(MockSaleReportRepository))
		_, err := svc.Summary(ctx, tenantID, userID)
		assert.ErrorIs(t, err, shared.ErrNoActiveShift)
	})
}

func TestDashboardRecentSales(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	shift, err := pos.NewShift(tenantID, userID, uuid.New(), decimal.Zero)
	require.NoError(t, err)

	invoice, err := pos.NewInvoice(tenantID, "INV-2026090007", userID, shift.ID, shift.WarehouseID)
	require.NoError(t, err)
	_, err = invoice.AddItem(uuid.New(), "Item", "I-1",
		decimal.NewFromInt(1), decimal.Zero, valueobject.NewMoneyUSDFromFloat(15), nil)
	require.NoError(t, err)

	t.Run("returns compact rows with default limit", func(t *testing.T) {
		shiftRepo := new(MockShiftRepository)
		invoiceRepo := new(MockInvoiceRepository)
		shiftRepo.On("FindOpenByUser", mock.Anything, tenantID, userID).Return(shift, nil)
		invoiceRepo.On("FindRecentByShift", mock.Anything, tenantID, shift.ID, defaultRecentSalesLimit).
			Return([]pos.Invoice{*invoice}, nil)

		svc := NewDashboardService(shiftRepo, invoiceRepo, new(MockTransactionRepository), new(MockSaleReportRepository))
		rows, err := svc.RecentSales(ctx, tenantID, userID, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "INV-2026090007", rows[0].Code)
		assert.Equal(t, 1, rows[0].ItemCount)
		assert.True(t, rows[0].TotalAmount.Equal(decimal.NewFromInt(15)))
	})

	t.Run("explicit limit is honored", func(t *testing.T) {
		shiftRepo := new(MockShiftRepository)
		invoiceRepo := new(MockInvoiceRepository)
		shiftRepo.On("FindOpenByUser", mock.Anything, tenantID, userID).Return(shift, nil)
		invoiceRepo.On("FindRecentByShift", mock.Anything, tenantID, shift.ID, 5).
			Return([]pos.Invoice{}, nil)

		svc := NewDashboardService(shiftRepo, invoiceRepo, new(MockTransactionRepository), new(MockSaleReportRepository))
		rows, err := svc.RecentSales(ctx, tenantID, userID, 5)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestDashboardShiftTransactions(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	shift, err := pos.NewShift(tenantID, userID, uuid.New(), decimal.Zero)
	require.NoError(t, err)

	t.Run("lists receipts of the open shift", func(t *testing.T) {
		invoiceID := uuid.New()
		receipt, err := finance.NewReceipt(tenantID, "RCPT-2026090003", invoiceID, nil,
			shift.ID, userID, valueobject.NewMoneyUSDFromFloat(42.5), "cash")
		require.NoError(t, err)

		shiftRepo := new(MockShiftRepository)
		txRepo := new(MockTransactionRepository)
		shiftRepo.On("FindOpenByUser", mock.Anything, tenantID, userID).Return(shift, nil)
		txRepo.On("FindByShift", mock.Anything, tenantID, shift.ID).
			Return([]finance.Transaction{*receipt}, nil)

		svc := NewDashboardService(shiftRepo, new(MockInvoiceRepository), txRepo, new(MockSaleReportRepository))
		rows, err := svc.ShiftTransactions(ctx, tenantID, userID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "RCPT-2026090003", rows[0].Code)
		assert.Equal(t, "receipt", rows[0].Type)
		require.NotNil(t, rows[0].InvoiceID)
		assert.Equal(t, invoiceID, *rows[0].InvoiceID)
		assert.True(t, rows[0].Amount.Equal(decimal.NewFromFloat(42.5)))
	})

	t.Run("no open shift fails", func(t *testing.T) {
		shiftRepo := new(MockShiftRepository)
		shiftRepo.On("FindOpenByUser", mock.Anything, tenantID, userID).Return(nil, shared.ErrNotFound)

		svc := NewDashboardService(shiftRepo, new(MockInvoiceRepository), new(MockTransactionRepository), new(MockSaleReportRepository))
		_, err := svc.ShiftTransactions(ctx, tenantID, userID)
		assert.ErrorIs(t, err, shared.ErrNoActiveShift)
	})
}

func TestAvailabilityCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("reports per-line stock position", func(t *testing.T) {
		f := newQuickSaleFixture(t)
		binID := uuid.New()
		f.stock.LocationID = &binID
		otherProduct := uuid.New()
		f.shiftRepo.On("FindOpenByUser", mock.Anything, f.tenantID, f.userID).Return(f.shift, nil)
		f.stockRepo.On("FindByProductAndWarehouse", mock.Anything, f.tenantID, f.product.ID, f.shift.WarehouseID).Return(f.stock, nil)
		f.stockRepo.On("FindByProductAndWarehouse", mock.Anything, f.tenantID, otherProduct, f.shift.WarehouseID).Return(nil, shared.ErrNotFound)

		svc := NewAvailabilityService(f.shiftRepo, f.stockRepo)
		resp, err := svc.Check(ctx, f.tenantID, f.userID, AvailabilityRequest{
			Items: []AvailabilityItemInput{
				{ProductID: f.product.ID, Quantity: decimal.NewFromInt(5)},
				{ProductID: otherProduct, Quantity: decimal.NewFromInt(1)},
			},
		})
		require.NoError(t, err)
		assert.False(t, resp.Available)
		require.Len(t, resp.Items, 2)
		assert.True(t, resp.Items[0].Available)
		assert.True(t, resp.Items[0].OnHand.Equal(decimal.NewFromInt(20)))
		require.NotNil(t, resp.Items[0].LocationID)
		assert.Equal(t, binID, *resp.Items[0].LocationID)
		assert.False(t, resp.Items[1].Available)
		assert.True(t, resp.Items[1].OnHand.IsZero())
		assert.Nil(t, resp.Items[1].LocationID)
	})

	t.Run("no open shift fails", func(t *testing.T) {
		f := newQuickSaleFixture(t)
		f.shiftRepo.ExpectedCalls = nil
		f.shiftRepo.On("FindOpenByUser", mock.Anything, f.tenantID, f.userID).Return(nil, shared.ErrNotFound)

		svc := NewAvailabilityService(f.shiftRepo, f.stockRepo)
		_, err := svc.Check(ctx, f.tenantID, f.userID, AvailabilityRequest{
			Items: []AvailabilityItemInput{{ProductID: f.product.ID, Quantity: decimal.NewFromInt(1)}},
		})
		assert.ErrorIs(t, err, shared.ErrNoActiveShift)
	})
}
