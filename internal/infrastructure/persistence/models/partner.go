package models

import (
	"github.com/retailpos/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer aggregate root.
type CustomerModel struct {
	TenantAggregateModel
	Name   string `gorm:"type:varchar(200);not null;index"`
	Code   string `gorm:"type:varchar(50);not null;uniqueIndex:idx_customers_tenant_code,priority:2"`
	Phone  string `gorm:"type:varchar(32);index"`
	Email  string `gorm:"type:varchar(200)"`
	Notes  string `gorm:"type:varchar(500)"`
	Active bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	customer := &partner.Customer{
		Name:   m.Name,
		Code:   m.Code,
		Phone:  m.Phone,
		Email:  m.Email,
		Notes:  m.Notes,
		Active: m.Active,
	}
	m.PopulateTenantAggregateRoot(&customer.TenantAggregateRoot)
	return customer
}

// FromDomain populates the persistence model from a domain Customer
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.Name = c.Name
	m.Code = c.Code
	m.Phone = c.Phone
	m.Email = c.Email
	m.Notes = c.Notes
	m.Active = c.Active
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
