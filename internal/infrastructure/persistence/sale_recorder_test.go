package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailpos/backend/internal/domain/finance"
	"github.com/retailpos/backend/internal/domain/pos"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/domain/shared/valueobject"
)

// buildSaleInvoice assembles a paid two-line invoice for recorder tests
func buildSaleInvoice(t *testing.T, tenantID uuid.UUID, productA, productB uuid.UUID) *pos.Invoice {
	t.Helper()
	invoice, err := pos.NewInvoice(tenantID, "INV-2026090001", uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = invoice.AddItem(productA, "Espresso Beans 1kg", "BEAN-001",
		decimal.NewFromInt(3), decimal.NewFromInt(10), valueobject.NewMoneyUSDFromFloat(10), nil)
	require.NoError(t, err)
	_, err = invoice.AddItem(productB, "Paper Cups 50pk", "CUP-050",
		decimal.NewFromInt(1), decimal.NewFromInt(10), valueobject.NewMoneyUSDFromFloat(5), nil)
	require.NoError(t, err)

	// 33 + 5.5
	require.NoError(t, invoice.RecordPayment(valueobject.NewMoneyUSDFromFloat(38.5), pos.PaymentMethodCash))
	return invoice
}

func stockRows(id, tenantID, productID, warehouseID uuid.UUID, quantity decimal.Decimal) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "tenant_id", "product_id", "warehouse_id", "location_id", "quantity"}).
		AddRow(id, tenantID, productID, warehouseID, nil, quantity)
}

func TestGormSaleRecorder_RecordSale(t *testing.T) {
	t.Run("commits one decrement and one movement per line", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		recorder := NewGormSaleRecorder(gormDB)

		tenantID := uuid.New()
		productA := uuid.New()
		productB := uuid.New()
		invoice := buildSaleInvoice(t, tenantID, productA, productB)
		receipt, err := finance.NewReceipt(tenantID, "RCPT-2026090001", invoice.ID, nil,
			invoice.ShiftID, invoice.UserID, valueobject.NewMoneyUSDFromFloat(38.5), "cash")
		require.NoError(t, err)

		stockA := uuid.New()
		stockB := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "invoices"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "invoice_items"`).
			WillReturnResult(sqlmock.NewResult(0, 2))

		mock.ExpectQuery(`SELECT \* FROM "stock_items" WHERE tenant_id = \$1 AND product_id = \$2 AND warehouse_id = \$3 .* FOR UPDATE`).
			WithArgs(tenantID, productA, invoice.WarehouseID, 1).
			WillReturnRows(stockRows(stockA, tenantID, productA, invoice.WarehouseID, decimal.NewFromInt(10)))
		mock.ExpectExec(`UPDATE "stock_items" SET "quantity"=\$1,"updated_at"=\$2 WHERE id = \$3`).
			WithArgs(decimal.NewFromInt(7), sqlmock.AnyArg(), stockA).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "inventory_transactions"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectQuery(`SELECT \* FROM "stock_items" WHERE tenant_id = \$1 AND product_id = \$2 AND warehouse_id = \$3 .* FOR UPDATE`).
			WithArgs(tenantID, productB, invoice.WarehouseID, 1).
			WillReturnRows(stockRows(stockB, tenantID, productB, invoice.WarehouseID, decimal.NewFromInt(5)))
		mock.ExpectExec(`UPDATE "stock_items" SET "quantity"=\$1,"updated_at"=\$2 WHERE id = \$3`).
			WithArgs(decimal.NewFromInt(4), sqlmock.AnyArg(), stockB).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "inventory_transactions"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectExec(`INSERT INTO "transactions"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = recorder.RecordSale(context.Background(), invoice, receipt)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back the whole sale on short stock", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		recorder := NewGormSaleRecorder(gormDB)

		tenantID := uuid.New()
		productA := uuid.New()
		productB := uuid.New()
		invoice := buildSaleInvoice(t, tenantID, productA, productB)

		stockA := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "invoices"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "invoice_items"`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		// Two on hand, three invoiced; the first line already fails
		mock.ExpectQuery(`SELECT \* FROM "stock_items" WHERE tenant_id = \$1 AND product_id = \$2 AND warehouse_id = \$3 .* FOR UPDATE`).
			WithArgs(tenantID, productA, invoice.WarehouseID, 1).
			WillReturnRows(stockRows(stockA, tenantID, productA, invoice.WarehouseID, decimal.NewFromInt(2)))
		mock.ExpectRollback()

		err := recorder.RecordSale(context.Background(), invoice, nil)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing stock row fails the sale", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		recorder := NewGormSaleRecorder(gormDB)

		tenantID := uuid.New()
		productA := uuid.New()
		productB := uuid.New()
		invoice := buildSaleInvoice(t, tenantID, productA, productB)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "invoices"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "invoice_items"`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectQuery(`SELECT \* FROM "stock_items" WHERE tenant_id = \$1 AND product_id = \$2 AND warehouse_id = \$3 .* FOR UPDATE`).
			WithArgs(tenantID, productA, invoice.WarehouseID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err := recorder.RecordSale(context.Background(), invoice, nil)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
