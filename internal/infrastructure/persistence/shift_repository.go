package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retailpos/backend/internal/domain/pos"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/infrastructure/persistence/models"
)

// GormShiftRepository implements pos.ShiftRepository using GORM
type GormShiftRepository struct {
	db *gorm.DB
}

// NewGormShiftRepository creates a new GormShiftRepository
func NewGormShiftRepository(db *gorm.DB) *GormShiftRepository {
	return &GormShiftRepository{db: db}
}

// FindByIDForTenant finds a shift by ID within a tenant
func (r *GormShiftRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*pos.Shift, error) {
	var model models.ShiftModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindOpenByUser finds the user's currently open shift
func (r *GormShiftRepository) FindOpenByUser(ctx context.Context, tenantID, userID uuid.UUID) (*pos.Shift, error) {
	var model models.ShiftModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ? AND status = ?", tenantID, userID, pos.ShiftStatusOpen).
		Order("opened_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists a shift, inserting or updating as needed
func (r *GormShiftRepository) Save(ctx context.Context, shift *pos.Shift) error {
	model := models.ShiftModelFromDomain(shift)
	return r.db.WithContext(ctx).Save(model).Error
}

var _ pos.ShiftRepository = (*GormShiftRepository)(nil)
