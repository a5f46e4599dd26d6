package pos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/shared"
)

// ShiftStatus represents the lifecycle state of a work shift
type ShiftStatus string

const (
	ShiftStatusOpen   ShiftStatus = "OPEN"
	ShiftStatusClosed ShiftStatus = "CLOSED"
)

// IsValid checks if the status is a valid ShiftStatus
func (s ShiftStatus) IsValid() bool {
	return s == ShiftStatusOpen || s == ShiftStatusClosed
}

// String returns the string representation of ShiftStatus
func (s ShiftStatus) String() string {
	return string(s)
}

// Shift represents one cashier's working session at a warehouse.
// Every sale-affecting operation resolves the acting user's open shift first.
type Shift struct {
	shared.TenantAggregateRoot
	UserID       uuid.UUID
	WarehouseID  uuid.UUID
	Status       ShiftStatus
	OpeningFloat decimal.Decimal // cash in the drawer when the shift opened
	OpenedAt     time.Time
	ClosedAt     *time.Time
}

// NewShift opens a new shift for a user at a warehouse
func NewShift(tenantID, userID, warehouseID uuid.UUID, openingFloat decimal.Decimal) (*Shift, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	if openingFloat.IsNegative() {
		return nil, shared.NewDomainError("INVALID_OPENING_FLOAT", "Opening float cannot be negative")
	}

	return &Shift{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		UserID:              userID,
		WarehouseID:         warehouseID,
		Status:              ShiftStatusOpen,
		OpeningFloat:        openingFloat,
		OpenedAt:            time.Now(),
	}, nil
}

// IsOpen returns true if the shift is still open
func (s *Shift) IsOpen() bool {
	return s.Status == ShiftStatusOpen
}

// Close closes the shift
func (s *Shift) Close() error {
	if s.Status == ShiftStatusClosed {
		return shared.NewDomainError("INVALID_STATE", "Shift is already closed")
	}
	now := time.Now()
	s.Status = ShiftStatusClosed
	s.ClosedAt = &now
	s.UpdatedAt = now
	return nil
}
