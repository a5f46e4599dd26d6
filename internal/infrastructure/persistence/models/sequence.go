package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentSequenceModel backs the per-tenant monthly counters used to issue
// sequential document codes. One row per (tenant, document type, period);
// the counter is advanced atomically with an upsert.
type DocumentSequenceModel struct {
	TenantID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocumentType string    `gorm:"type:varchar(20);primaryKey"`
	Period       string    `gorm:"type:varchar(6);primaryKey"` // YYYYMM
	Counter      int64     `gorm:"not null;default:0"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DocumentSequenceModel) TableName() string {
	return "document_sequences"
}
