package pos

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/retailpos/backend/internal/domain/pos"
	"github.com/retailpos/backend/internal/domain/shared"
)

// ShiftService manages the cashier shift lifecycle
type ShiftService struct {
	shiftRepo pos.ShiftRepository
}

// NewShiftService creates a new ShiftService
func NewShiftService(shiftRepo pos.ShiftRepository) *ShiftService {
	return &ShiftService{shiftRepo: shiftRepo}
}

// Open opens a new shift for the acting user. A user can have at most one
// open shift at a time.
func (s *ShiftService) Open(ctx context.Context, tenantID, userID uuid.UUID, req OpenShiftRequest) (*ShiftResponse, error) {
	existing, err := s.shiftRepo.FindOpenByUser(ctx, tenantID, userID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "User already has an open shift")
	}

	shift, err := pos.NewShift(tenantID, userID, req.WarehouseID, req.OpeningFloat)
	if err != nil {
		return nil, err
	}
	if err := s.shiftRepo.Save(ctx, shift); err != nil {
		return nil, err
	}

	response := ToShiftResponse(shift)
	return &response, nil
}

// Close closes the acting user's open shift
func (s *ShiftService) Close(ctx context.Context, tenantID, userID uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.shiftRepo.FindOpenByUser(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoActiveShift
		}
		return nil, err
	}

	if err := shift.Close(); err != nil {
		return nil, err
	}
	if err := s.shiftRepo.Save(ctx, shift); err != nil {
		return nil, err
	}

	response := ToShiftResponse(shift)
	return &response, nil
}

// Current returns the acting user's open shift
func (s *ShiftService) Current(ctx context.Context, tenantID, userID uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.shiftRepo.FindOpenByUser(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoActiveShift
		}
		return nil, err
	}
	response := ToShiftResponse(shift)
	return &response, nil
}
