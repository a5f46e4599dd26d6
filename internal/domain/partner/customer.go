package partner

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/retailpos/backend/internal/domain/shared"
)

// Customer represents a buyer that sales can optionally be attributed to
type Customer struct {
	shared.TenantAggregateRoot
	Name   string
	Code   string
	Phone  string
	Email  string
	Notes  string
	Active bool
}

// NewCustomer creates a new customer
func NewCustomer(tenantID uuid.UUID, name, code string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Customer code cannot be empty")
	}

	return &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Code:                code,
		Active:              true,
	}, nil
}

// SetContact sets the customer's contact details
func (c *Customer) SetContact(phone, email string) error {
	if email != "" && !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
	}
	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now()
	return nil
}

// SetNotes sets free-form notes
func (c *Customer) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
}

// Deactivate hides the customer from new sales
func (c *Customer) Deactivate() {
	c.Active = false
	c.UpdatedAt = time.Now()
}

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error)
	// SearchForTenant matches the filter's search term against name, code
	// and phone, case-insensitively.
	SearchForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[Customer], error)
	Save(ctx context.Context, customer *Customer) error
}
