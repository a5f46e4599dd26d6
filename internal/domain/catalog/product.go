package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/retailpos/backend/internal/domain/shared/valueobject"
)

// Product represents a sellable item in the catalog
type Product struct {
	shared.TenantAggregateRoot
	Name         string
	Code         string
	Barcode      string
	Description  string
	SellingPrice valueobject.Money
	TaxRate      decimal.Decimal // percentage, e.g. 10 for 10%
	Unit         string
	Active       bool
}

// NewProduct creates a new product
func NewProduct(tenantID uuid.UUID, name, code string, sellingPrice valueobject.Money, taxRate decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	if taxRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TAX_RATE", "Tax rate cannot be negative")
	}

	return &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Code:                code,
		SellingPrice:        sellingPrice,
		TaxRate:             taxRate,
		Unit:                "pcs",
		Active:              true,
	}, nil
}

// SetBarcode sets the scannable barcode
func (p *Product) SetBarcode(barcode string) {
	p.Barcode = barcode
	p.UpdatedAt = time.Now()
}

// SetDescription sets the free-form description
func (p *Product) SetDescription(description string) {
	p.Description = description
	p.UpdatedAt = time.Now()
}

// UpdatePrice changes the selling price
func (p *Product) UpdatePrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	p.SellingPrice = price
	p.UpdatedAt = time.Now()
	return nil
}

// Deactivate removes the product from sale without deleting it
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}

// IsSellable reports whether the product can appear on a new invoice
func (p *Product) IsSellable() bool {
	return p.Active
}

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Product, error)
	FindByBarcode(ctx context.Context, tenantID uuid.UUID, barcode string) (*Product, error)
	// SearchForTenant matches the filter's search term against name, code
	// and barcode, case-insensitively.
	SearchForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[Product], error)
	Save(ctx context.Context, product *Product) error
}
