package pos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/retailpos/backend/internal/domain/catalog"
	"github.com/retailpos/backend/internal/domain/finance"
	"github.com/retailpos/backend/internal/domain/inventory"
	"github.com/retailpos/backend/internal/domain/partner"
	"github.com/retailpos/backend/internal/domain/pos"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/domain/shared/valueobject"
	"github.com/retailpos/backend/internal/infrastructure/telemetry"
)

// QuickSaleService records completed counter sales. One call produces the
// invoice with its items, the stock decrements with their movement audit
// rows, and the receipt when money changed hands, committed atomically.
type QuickSaleService struct {
	shiftRepo    pos.ShiftRepository
	invoiceRepo  pos.InvoiceRepository
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	stockRepo    inventory.StockRepository
	txRepo       finance.TransactionRepository
	recorder     pos.SaleRecorder
}

// NewQuickSaleService creates a new QuickSaleService
func NewQuickSaleService(
	shiftRepo pos.ShiftRepository,
	invoiceRepo pos.InvoiceRepository,
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
	stockRepo inventory.StockRepository,
	txRepo finance.TransactionRepository,
	recorder pos.SaleRecorder,
) *QuickSaleService {
	return &QuickSaleService{
		shiftRepo:    shiftRepo,
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		stockRepo:    stockRepo,
		txRepo:       txRepo,
		recorder:     recorder,
	}
}

// RecordSale records a completed counter sale for the acting user.
// The user must have an open shift; the sale is tied to it and its warehouse.
func (s *QuickSaleService) RecordSale(ctx context.Context, tenantID, userID uuid.UUID, req QuickSaleRequest) (resp *QuickSaleResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "quick_sale", "record",
		attribute.String("tenant_id", tenantID.String()),
		attribute.Int("item_count", len(req.Items)),
	)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sale must contain at least one item")
	}

	shift, err := s.shiftRepo.FindOpenByUser(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoActiveShift
		}
		return nil, err
	}

	// Resolve the optional customer before reserving a code
	var customer *partner.Customer
	if req.CustomerID != nil {
		customer, err = s.customerRepo.FindByIDForTenant(ctx, tenantID, *req.CustomerID)
		if err != nil {
			return nil, err
		}
	}

	issuedAt := time.Now()
	code, err := s.invoiceRepo.NextCode(ctx, tenantID, issuedAt)
	if err != nil {
		return nil, err
	}

	invoice, err := pos.NewInvoice(tenantID, code, userID, shift.ID, shift.WarehouseID)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		invoice.SetCustomer(customer.ID, customer.Name)
	}
	if req.Notes != "" {
		invoice.SetNotes(req.Notes)
	}

	for _, line := range req.Items {
		product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, line.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.IsSellable() {
			return nil, shared.NewDomainError("PRODUCT_INACTIVE", "Product "+product.Code+" is not for sale")
		}

		// Pre-check against current stock for a friendly error. The
		// recorder re-checks under a row lock, so this is advisory only.
		stock, err := s.stockRepo.FindByProductAndWarehouse(ctx, tenantID, product.ID, shift.WarehouseID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.ErrInsufficientStock
			}
			return nil, err
		}
		if !stock.CanFulfill(line.Quantity) {
			return nil, shared.ErrInsufficientStock
		}

		unitPrice := product.SellingPrice
		if line.UnitPrice != nil {
			unitPrice = valueobject.NewMoneyUSD(*line.UnitPrice)
		}

		if _, err := invoice.AddItem(product.ID, product.Name, product.Code,
			line.Quantity, product.TaxRate, unitPrice, stock.LocationID); err != nil {
			return nil, err
		}
	}

	if req.Discount != nil {
		if err := invoice.ApplyDiscount(valueobject.NewMoneyUSD(*req.Discount)); err != nil {
			return nil, err
		}
	}

	if err := invoice.RecordPayment(valueobject.NewMoneyUSD(req.PaidAmount), pos.PaymentMethod(req.PaymentMethod)); err != nil {
		return nil, err
	}

	// Money changed hands, so a receipt accompanies the invoice
	var receipt *finance.Transaction
	if req.PaidAmount.IsPositive() {
		receiptCode, err := s.txRepo.NextCode(ctx, tenantID, issuedAt)
		if err != nil {
			return nil, err
		}
		receipt, err = finance.NewReceipt(tenantID, receiptCode, invoice.ID, invoice.CustomerID,
			shift.ID, userID, valueobject.NewMoneyUSD(req.PaidAmount), req.PaymentMethod)
		if err != nil {
			return nil, err
		}
	}

	if err := s.recorder.RecordSale(ctx, invoice, receipt); err != nil {
		return nil, err
	}

	receiptCode := ""
	if receipt != nil {
		receiptCode = receipt.Code
	}
	response := ToQuickSaleResponse(invoice, receiptCode)
	return &response, nil
}

// GetSale retrieves a recorded sale by ID
func (s *QuickSaleService) GetSale(ctx context.Context, tenantID, invoiceID uuid.UUID) (*QuickSaleResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDForTenant(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	response := ToQuickSaleResponse(invoice, "")
	return &response, nil
}

// GetSaleByCode retrieves a recorded sale by its invoice code, as printed
// on the receipt
func (s *QuickSaleService) GetSaleByCode(ctx context.Context, tenantID uuid.UUID, code string) (*QuickSaleResponse, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Invoice code cannot be empty")
	}
	invoice, err := s.invoiceRepo.FindByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	response := ToQuickSaleResponse(invoice, "")
	return &response, nil
}
