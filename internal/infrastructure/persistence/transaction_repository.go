package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retailpos/backend/internal/domain/finance"
	"github.com/retailpos/backend/internal/infrastructure/persistence/models"
)

// GormTransactionRepository implements finance.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByShift returns all transactions recorded under a shift
func (r *GormTransactionRepository) FindByShift(ctx context.Context, tenantID, shiftID uuid.UUID) ([]finance.Transaction, error) {
	var txModels []models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND shift_id = ?", tenantID, shiftID).
		Order("transaction_date ASC").
		Find(&txModels).Error; err != nil {
		return nil, err
	}

	txs := make([]finance.Transaction, len(txModels))
	for i := range txModels {
		txs[i] = *txModels[i].ToDomain()
	}
	return txs, nil
}

// NextCode reserves the next sequential receipt code for the month of issuedAt
func (r *GormTransactionRepository) NextCode(ctx context.Context, tenantID uuid.UUID, issuedAt time.Time) (string, error) {
	counter, err := nextSequence(ctx, r.db, tenantID, docTypeReceipt, issuedAt)
	if err != nil {
		return "", err
	}
	return formatDocumentCode("RCPT", issuedAt, counter), nil
}

var _ finance.TransactionRepository = (*GormTransactionRepository)(nil)
