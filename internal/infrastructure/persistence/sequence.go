package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document types tracked by the sequence counters
const (
	docTypeInvoice = "invoice"
	docTypeReceipt = "receipt"
)

// nextSequence atomically advances the per-tenant monthly counter for a
// document type and returns the new value. The upsert ensures two concurrent
// callers never observe the same counter value, without any advisory locks.
func nextSequence(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, docType string, issuedAt time.Time) (int64, error) {
	period := issuedAt.Format("200601")

	var counter int64
	err := db.WithContext(ctx).Raw(`
		INSERT INTO document_sequences (tenant_id, document_type, period, counter, updated_at)
		VALUES (?, ?, ?, 1, NOW())
		ON CONFLICT (tenant_id, document_type, period)
		DO UPDATE SET counter = document_sequences.counter + 1, updated_at = NOW()
		RETURNING counter`,
		tenantID, docType, period,
	).Scan(&counter).Error
	if err != nil {
		return 0, fmt.Errorf("failed to advance %s sequence: %w", docType, err)
	}
	return counter, nil
}

// formatDocumentCode renders a sequential document code, e.g. INV-2026090001
func formatDocumentCode(prefix string, issuedAt time.Time, counter int64) string {
	return fmt.Sprintf("%s-%s%04d", prefix, issuedAt.Format("200601"), counter)
}
