package pos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/domain/shared/valueobject"
)

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPending InvoiceStatus = "pending"
)

// PaymentMethod represents how a sale was paid
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// IsValid checks if the payment method is known
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// InvoiceItem represents one line of a sale. Items are immutable once the
// invoice is persisted; they are only attached at creation time.
type InvoiceItem struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	ProductCode string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal // percentage, e.g. 10 for 10%
	TaxAmount   decimal.Decimal // UnitPrice * Quantity * TaxRate / 100
	Subtotal    decimal.Decimal // UnitPrice * Quantity
	TotalAmount decimal.Decimal // Subtotal + TaxAmount
	LocationID  *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewInvoiceItem creates a new invoice line item.
// A zero unit price is allowed (promotional give-aways); negative prices are not.
func NewInvoiceItem(invoiceID, productID uuid.UUID, productName, productCode string, quantity, taxRate decimal.Decimal, unitPrice valueobject.Money, locationID *uuid.UUID) (*InvoiceItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if taxRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TAX_RATE", "Tax rate cannot be negative")
	}

	now := time.Now()
	subtotal := unitPrice.Amount().Mul(quantity)
	taxAmount := subtotal.Mul(taxRate).Div(decimal.NewFromInt(100))

	return &InvoiceItem{
		ID:          uuid.New(),
		InvoiceID:   invoiceID,
		ProductID:   productID,
		ProductName: productName,
		ProductCode: productCode,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Amount(),
		TaxRate:     taxRate,
		TaxAmount:   taxAmount,
		Subtotal:    subtotal,
		TotalAmount: subtotal.Add(taxAmount),
		LocationID:  locationID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Invoice represents one recorded sale: the header plus its immutable line
// items. It is the aggregate root of the quick-sale flow.
type Invoice struct {
	shared.TenantAggregateRoot
	Code           string
	CustomerID     *uuid.UUID
	CustomerName   string
	UserID         uuid.UUID
	ShiftID        uuid.UUID
	WarehouseID    uuid.UUID
	Items          []InvoiceItem
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal // Subtotal + TaxAmount - DiscountAmount
	PaidAmount     decimal.Decimal
	PaymentMethod  PaymentMethod
	Status         InvoiceStatus
	Notes          string
}

// NewInvoice creates a new invoice tied to a shift and its warehouse
func NewInvoice(tenantID uuid.UUID, code string, userID, shiftID, warehouseID uuid.UUID) (*Invoice, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Invoice code cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if shiftID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHIFT", "Shift ID cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}

	return &Invoice{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		UserID:              userID,
		ShiftID:             shiftID,
		WarehouseID:         warehouseID,
		Items:               make([]InvoiceItem, 0),
		Subtotal:            decimal.Zero,
		TaxAmount:           decimal.Zero,
		DiscountAmount:      decimal.Zero,
		TotalAmount:         decimal.Zero,
		PaidAmount:          decimal.Zero,
		Status:              InvoiceStatusPending,
	}, nil
}

// SetCustomer attaches an optional customer to the invoice
func (i *Invoice) SetCustomer(customerID uuid.UUID, customerName string) {
	i.CustomerID = &customerID
	i.CustomerName = customerName
	i.UpdatedAt = time.Now()
}

// SetNotes sets free-form notes on the invoice
func (i *Invoice) SetNotes(notes string) {
	i.Notes = notes
	i.UpdatedAt = time.Now()
}

// AddItem adds a line item and recalculates the invoice totals
func (i *Invoice) AddItem(productID uuid.UUID, productName, productCode string, quantity, taxRate decimal.Decimal, unitPrice valueobject.Money, locationID *uuid.UUID) (*InvoiceItem, error) {
	item, err := NewInvoiceItem(i.ID, productID, productName, productCode, quantity, taxRate, unitPrice, locationID)
	if err != nil {
		return nil, err
	}
	i.Items = append(i.Items, *item)
	i.recalculate()
	return &i.Items[len(i.Items)-1], nil
}

// ApplyDiscount sets an order-level discount and recalculates the total
func (i *Invoice) ApplyDiscount(discount valueobject.Money) error {
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	gross := i.Subtotal.Add(i.TaxAmount)
	if discount.Amount().GreaterThan(gross) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed invoice amount")
	}
	i.DiscountAmount = discount.Amount()
	i.recalculate()
	return nil
}

// RecordPayment records the paid amount and derives the invoice status:
// paid when the payment covers the total, pending otherwise.
func (i *Invoice) RecordPayment(paid valueobject.Money, method PaymentMethod) error {
	if paid.IsNegative() {
		return shared.NewDomainError("INVALID_PAYMENT", "Paid amount cannot be negative")
	}
	if method != "" && !method.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}
	i.PaidAmount = paid.Amount()
	i.PaymentMethod = method
	if i.PaidAmount.GreaterThanOrEqual(i.TotalAmount) {
		i.Status = InvoiceStatusPaid
	} else {
		i.Status = InvoiceStatusPending
	}
	i.UpdatedAt = time.Now()
	return nil
}

// ItemCount returns the number of line items
func (i *Invoice) ItemCount() int {
	return len(i.Items)
}

// recalculate recomputes subtotal, tax and total from the line items
func (i *Invoice) recalculate() {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for _, item := range i.Items {
		subtotal = subtotal.Add(item.Subtotal)
		tax = tax.Add(item.TaxAmount)
	}
	i.Subtotal = subtotal
	i.TaxAmount = tax
	i.TotalAmount = subtotal.Add(tax).Sub(i.DiscountAmount)
	i.UpdatedAt = time.Now()
}
