package models

import (
	"github.com/shopspring/decimal"

	"github.com/retailpos/backend/internal/domain/catalog"
	"github.com/retailpos/backend/internal/domain/shared/valueobject"
)

// ProductModel is the persistence model for the Product aggregate root.
type ProductModel struct {
	TenantAggregateModel
	Name         string          `gorm:"type:varchar(200);not null;index"`
	Code         string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_products_tenant_code,priority:2"`
	Barcode      string          `gorm:"type:varchar(64);index"`
	Description  string          `gorm:"type:text"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TaxRate      decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	Unit         string          `gorm:"type:varchar(20);not null;default:'pcs'"`
	Active       bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	product := &catalog.Product{
		Name:         m.Name,
		Code:         m.Code,
		Barcode:      m.Barcode,
		Description:  m.Description,
		SellingPrice: valueobject.NewMoneyUSD(m.SellingPrice),
		TaxRate:      m.TaxRate,
		Unit:         m.Unit,
		Active:       m.Active,
	}
	m.PopulateTenantAggregateRoot(&product.TenantAggregateRoot)
	return product
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	m.Name = p.Name
	m.Code = p.Code
	m.Barcode = p.Barcode
	m.Description = p.Description
	m.SellingPrice = p.SellingPrice.Amount()
	m.TaxRate = p.TaxRate
	m.Unit = p.Unit
	m.Active = p.Active
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
