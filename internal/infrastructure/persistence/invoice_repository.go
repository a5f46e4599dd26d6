package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retailpos/backend/internal/domain/pos"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/infrastructure/persistence/models"
)

// GormInvoiceRepository implements pos.InvoiceRepository using GORM.
// Invoice writes happen through the sale recorder; this repository only
// reads and reserves codes.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByIDForTenant finds an invoice with its items by ID within a tenant
func (r *GormInvoiceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*pos.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds an invoice by its code within a tenant
func (r *GormInvoiceRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*pos.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND code = ?", tenantID, code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindRecentByShift returns the latest invoices recorded under a shift
func (r *GormInvoiceRepository) FindRecentByShift(ctx context.Context, tenantID, shiftID uuid.UUID, limit int) ([]pos.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND shift_id = ?", tenantID, shiftID).
		Order("created_at DESC").
		Limit(limit).
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]pos.Invoice, len(invoiceModels))
	for i := range invoiceModels {
		invoices[i] = *invoiceModels[i].ToDomain()
	}
	return invoices, nil
}

// NextCode reserves the next sequential invoice code for the month of issuedAt
func (r *GormInvoiceRepository) NextCode(ctx context.Context, tenantID uuid.UUID, issuedAt time.Time) (string, error) {
	counter, err := nextSequence(ctx, r.db, tenantID, docTypeInvoice, issuedAt)
	if err != nil {
		return "", err
	}
	return formatDocumentCode("INV", issuedAt, counter), nil
}

var _ pos.InvoiceRepository = (*GormInvoiceRepository)(nil)
