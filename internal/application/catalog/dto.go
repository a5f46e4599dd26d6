package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=200"`
	Code         string          `json:"code" binding:"required,min=1,max=50"`
	Barcode      string          `json:"barcode" binding:"max=64"`
	Description  string          `json:"description" binding:"max=1000"`
	SellingPrice decimal.Decimal `json:"selling_price" binding:"required"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	Unit         string          `json:"unit" binding:"max=20"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Barcode      *string          `json:"barcode"`
	Description  *string          `json:"description"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	Active       *bool            `json:"active"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductResponse represents a product
type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Code         string          `json:"code"`
	Barcode      string          `json:"barcode,omitempty"`
	Description  string          `json:"description,omitempty"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	Unit         string          `json:"unit"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToProductResponse converts a product into the API response
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Code:         p.Code,
		Barcode:      p.Barcode,
		Description:  p.Description,
		SellingPrice: p.SellingPrice.Amount(),
		TaxRate:      p.TaxRate,
		Unit:         p.Unit,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
