package partner

import (
	"strings"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
)

// Customer represents a buyer of finished bags, either a person or a
// company contact.
type Customer struct {
	shared.BaseEntity
	Name        string
	CompanyName string
	Email       string
	Phone       string
	Address     string
	City        string
	PostalCode  string
	IsActive    bool
}

// NewCustomer creates a new active customer
func NewCustomer(name string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		IsActive:   true,
	}, nil
}

// SetName renames the customer
func (c *Customer) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	c.Name = name
	c.Touch()
	return nil
}

// SetCompanyName sets the optional company the customer buys for
func (c *Customer) SetCompanyName(companyName string) error {
	if len(companyName) > 200 {
		return shared.NewDomainError("INVALID_COMPANY", "Company name cannot exceed 200 characters")
	}
	c.CompanyName = strings.TrimSpace(companyName)
	c.Touch()
	return nil
}

// SetContact sets email and phone
func (c *Customer) SetContact(email, phone string) error {
	if len(email) > 255 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 255 characters")
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	c.Email = strings.ToLower(strings.TrimSpace(email))
	c.Phone = strings.TrimSpace(phone)
	c.Touch()
	return nil
}

// SetAddress sets the shipping address fields
func (c *Customer) SetAddress(address, city, postalCode string) error {
	if len(address) > 1000 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 1000 characters")
	}
	if len(city) > 100 {
		return shared.NewDomainError("INVALID_ADDRESS", "City cannot exceed 100 characters")
	}
	if len(postalCode) > 20 {
		return shared.NewDomainError("INVALID_ADDRESS", "Postal code cannot exceed 20 characters")
	}
	c.Address = address
	c.City = strings.TrimSpace(city)
	c.PostalCode = strings.TrimSpace(postalCode)
	c.Touch()
	return nil
}

// Activate re-enables the customer
func (c *Customer) Activate() error {
	if c.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Customer is already active")
	}
	c.IsActive = true
	c.Touch()
	return nil
}

// Deactivate hides the customer from new orders
func (c *Customer) Deactivate() error {
	if !c.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Customer is already inactive")
	}
	c.IsActive = false
	c.Touch()
	return nil
}
