package pos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/finance"
	"github.com/retailpos/backend/internal/domain/pos"
)

// ==================== Quick Sale DTOs ====================

// QuickSaleItemInput represents one line of a quick sale request
type QuickSaleItemInput struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice *decimal.Decimal `json:"unit_price"` // optional price override; nil uses the catalog price
}

// QuickSaleRequest represents a request to record a completed counter sale
type QuickSaleRequest struct {
	CustomerID    *uuid.UUID           `json:"customer_id"`
	Items         []QuickSaleItemInput `json:"items" binding:"required,min=1"`
	Discount      *decimal.Decimal     `json:"discount"`
	PaidAmount    decimal.Decimal      `json:"paid_amount"`
	PaymentMethod string               `json:"payment_method" binding:"omitempty,oneof=cash card transfer"`
	Notes         string               `json:"notes" binding:"max=500"`
}

// QuickSaleItemResponse represents one recorded invoice line
type QuickSaleItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// QuickSaleResponse represents a recorded sale
type QuickSaleResponse struct {
	ID             uuid.UUID               `json:"id"`
	Code           string                  `json:"code"`
	CustomerID     *uuid.UUID              `json:"customer_id,omitempty"`
	CustomerName   string                  `json:"customer_name,omitempty"`
	ShiftID        uuid.UUID               `json:"shift_id"`
	WarehouseID    uuid.UUID               `json:"warehouse_id"`
	Items          []QuickSaleItemResponse `json:"items"`
	Subtotal       decimal.Decimal         `json:"subtotal"`
	TaxAmount      decimal.Decimal         `json:"tax_amount"`
	DiscountAmount decimal.Decimal         `json:"discount_amount"`
	TotalAmount    decimal.Decimal         `json:"total_amount"`
	PaidAmount     decimal.Decimal         `json:"paid_amount"`
	ChangeDue      decimal.Decimal         `json:"change_due"`
	PaymentMethod  string                  `json:"payment_method,omitempty"`
	Status         string                  `json:"status"`
	ReceiptCode    string                  `json:"receipt_code,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}

// ToQuickSaleResponse converts an invoice (plus its optional receipt code)
// into the API response
func ToQuickSaleResponse(invoice *pos.Invoice, receiptCode string) QuickSaleResponse {
	items := make([]QuickSaleItemResponse, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, QuickSaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			TaxAmount:   item.TaxAmount,
			Subtotal:    item.Subtotal,
			TotalAmount: item.TotalAmount,
		})
	}

	changeDue := decimal.Zero
	if invoice.PaidAmount.GreaterThan(invoice.TotalAmount) {
		changeDue = invoice.PaidAmount.Sub(invoice.TotalAmount)
	}

	return QuickSaleResponse{
		ID:             invoice.ID,
		Code:           invoice.Code,
		CustomerID:     invoice.CustomerID,
		CustomerName:   invoice.CustomerName,
		ShiftID:        invoice.ShiftID,
		WarehouseID:    invoice.WarehouseID,
		Items:          items,
		Subtotal:       invoice.Subtotal,
		TaxAmount:      invoice.TaxAmount,
		DiscountAmount: invoice.DiscountAmount,
		TotalAmount:    invoice.TotalAmount,
		PaidAmount:     invoice.PaidAmount,
		ChangeDue:      changeDue,
		PaymentMethod:  string(invoice.PaymentMethod),
		Status:         string(invoice.Status),
		ReceiptCode:    receiptCode,
		CreatedAt:      invoice.CreatedAt,
	}
}

// ==================== Availability DTOs ====================

// AvailabilityItemInput asks for the stock level of one product
type AvailabilityItemInput struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
}

// AvailabilityRequest asks whether a basket could be fulfilled right now
type AvailabilityRequest struct {
	Items []AvailabilityItemInput `json:"items" binding:"required,min=1"`
}

// AvailabilityItemResponse reports the stock position of one product
type AvailabilityItemResponse struct {
	ProductID  uuid.UUID       `json:"product_id"`
	Requested  decimal.Decimal `json:"requested"`
	OnHand     decimal.Decimal `json:"on_hand"`
	LocationID *uuid.UUID      `json:"location_id,omitempty"`
	Available  bool            `json:"available"`
}

// AvailabilityResponse reports the stock position of a whole basket
type AvailabilityResponse struct {
	Available bool                       `json:"available"`
	Items     []AvailabilityItemResponse `json:"items"`
}

// ==================== Shift DTOs ====================

// OpenShiftRequest opens a new shift at a warehouse
type OpenShiftRequest struct {
	WarehouseID  uuid.UUID       `json:"warehouse_id" binding:"required"`
	OpeningFloat decimal.Decimal `json:"opening_float"`
}

// ShiftResponse represents a shift
type ShiftResponse struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	WarehouseID  uuid.UUID       `json:"warehouse_id"`
	Status       string          `json:"status"`
	OpeningFloat decimal.Decimal `json:"opening_float"`
	OpenedAt     time.Time       `json:"opened_at"`
	ClosedAt     *time.Time      `json:"closed_at,omitempty"`
}

// ToShiftResponse converts a shift into the API response
func ToShiftResponse(shift *pos.Shift) ShiftResponse {
	return ShiftResponse{
		ID:           shift.ID,
		UserID:       shift.UserID,
		WarehouseID:  shift.WarehouseID,
		Status:       shift.Status.String(),
		OpeningFloat: shift.OpeningFloat,
		OpenedAt:     shift.OpenedAt,
		ClosedAt:     shift.ClosedAt,
	}
}

// ==================== Dashboard DTOs ====================

// DashboardResponse summarizes the acting user's open shift
type DashboardResponse struct {
	Shift        ShiftResponse   `json:"shift"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	InvoiceCount int64           `json:"invoice_count"`
	PendingCount int64           `json:"pending_count"`
	CashTotal    decimal.Decimal `json:"cash_total"`
	CardTotal    decimal.Decimal `json:"card_total"`
}

// RecentSaleResponse is a compact invoice row for the recent-sales list
type RecentSaleResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	CustomerName  string          `json:"customer_name,omitempty"`
	ItemCount     int             `json:"item_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToRecentSaleResponse converts an invoice into a recent-sales row
func ToRecentSaleResponse(invoice *pos.Invoice) RecentSaleResponse {
	return RecentSaleResponse{
		ID:            invoice.ID,
		Code:          invoice.Code,
		CustomerName:  invoice.CustomerName,
		ItemCount:     invoice.ItemCount(),
		TotalAmount:   invoice.TotalAmount,
		PaymentMethod: string(invoice.PaymentMethod),
		Status:        string(invoice.Status),
		CreatedAt:     invoice.CreatedAt,
	}
}

// TransactionResponse is one money movement row of a shift
type TransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	Code            string          `json:"code"`
	Type            string          `json:"type"`
	InvoiceID       *uuid.UUID      `json:"invoice_id,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Method          string          `json:"method,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// ToTransactionResponse converts a financial transaction into the API response
func ToTransactionResponse(tx *finance.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		Code:            tx.Code,
		Type:            string(tx.Type),
		InvoiceID:       tx.InvoiceID,
		Amount:          tx.Amount,
		Method:          tx.Method,
		TransactionDate: tx.TransactionDate,
	}
}
