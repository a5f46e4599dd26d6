package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/retailpos/backend/internal/domain/finance"
	"github.com/retailpos/backend/internal/domain/inventory"
	"github.com/retailpos/backend/internal/domain/pos"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/infrastructure/persistence/models"
)

// GormSaleRecorder implements pos.SaleRecorder. All effects of one sale go
// through a single database transaction: the invoice and its items, one
// row-locked stock decrement and one movement audit row per line, and the
// receipt when present. A failed stock check rolls everything back.
type GormSaleRecorder struct {
	db *gorm.DB
}

// NewGormSaleRecorder creates a new GormSaleRecorder
func NewGormSaleRecorder(db *gorm.DB) *GormSaleRecorder {
	return &GormSaleRecorder{db: db}
}

// RecordSale persists an invoice and all its side effects atomically
func (r *GormSaleRecorder) RecordSale(ctx context.Context, invoice *pos.Invoice, receipt *finance.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invoiceModel := models.InvoiceModelFromDomain(invoice)
		if err := tx.Create(invoiceModel).Error; err != nil {
			return err
		}

		for i := range invoice.Items {
			if err := r.deductStock(tx, invoice, &invoice.Items[i]); err != nil {
				return err
			}
		}

		if receipt != nil {
			receiptModel := models.TransactionModelFromDomain(receipt)
			if err := tx.Create(receiptModel).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// deductStock locks the stock row, verifies the floor, decrements it and
// writes the movement audit entry for one invoice line
func (r *GormSaleRecorder) deductStock(tx *gorm.DB, invoice *pos.Invoice, item *pos.InvoiceItem) error {
	var stockModel models.StockItemModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ? AND product_id = ? AND warehouse_id = ?",
			invoice.TenantID, item.ProductID, invoice.WarehouseID).
		First(&stockModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrInsufficientStock
		}
		return err
	}

	stock := stockModel.ToDomain()
	balanceBefore := stock.Quantity
	if err := stock.Decrease(item.Quantity); err != nil {
		return err
	}

	if err := tx.Model(&models.StockItemModel{}).
		Where("id = ?", stockModel.ID).
		Updates(map[string]any{
			"quantity":   stock.Quantity,
			"updated_at": stock.UpdatedAt,
		}).Error; err != nil {
		return err
	}

	lineID := item.ID
	movement, err := inventory.NewOutMovement(
		invoice.TenantID, item.ProductID, invoice.WarehouseID, stock.LocationID,
		item.Quantity, balanceBefore,
		inventory.SourceTypeInvoice, invoice.ID, &lineID,
	)
	if err != nil {
		return err
	}
	return tx.Create(models.StockMovementModelFromDomain(movement)).Error
}

var _ pos.SaleRecorder = (*GormSaleRecorder)(nil)
