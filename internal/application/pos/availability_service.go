package pos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/inventory"
	"github.com/retailpos/backend/internal/domain/pos"
	"github.com/retailpos/backend/internal/domain/shared"
)

// AvailabilityService answers "could this basket be sold right now" against
// the acting user's shift warehouse. The answer is advisory; the sale itself
// re-checks stock under a row lock.
type AvailabilityService struct {
	shiftRepo pos.ShiftRepository
	stockRepo inventory.StockRepository
}

// NewAvailabilityService creates a new AvailabilityService
func NewAvailabilityService(shiftRepo pos.ShiftRepository, stockRepo inventory.StockRepository) *AvailabilityService {
	return &AvailabilityService{
		shiftRepo: shiftRepo,
		stockRepo: stockRepo,
	}
}

// Check reports the stock position for each requested product
func (s *AvailabilityService) Check(ctx context.Context, tenantID, userID uuid.UUID, req AvailabilityRequest) (*AvailabilityResponse, error) {
	shift, err := s.shiftRepo.FindOpenByUser(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoActiveShift
		}
		return nil, err
	}

	response := AvailabilityResponse{
		Available: true,
		Items:     make([]AvailabilityItemResponse, 0, len(req.Items)),
	}

	for _, line := range req.Items {
		onHand := decimal.Zero
		var locationID *uuid.UUID
		stock, err := s.stockRepo.FindByProductAndWarehouse(ctx, tenantID, line.ProductID, shift.WarehouseID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if stock != nil {
			onHand = stock.Quantity
			locationID = stock.LocationID
		}

		available := onHand.GreaterThanOrEqual(line.Quantity)
		if !available {
			response.Available = false
		}
		response.Items = append(response.Items, AvailabilityItemResponse{
			ProductID:  line.ProductID,
			Requested:  line.Quantity,
			OnHand:     onHand,
			LocationID: locationID,
			Available:  available,
		})
	}

	return &response, nil
}
