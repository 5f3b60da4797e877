package catalog

import (
	"strings"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a finished bag model that can be sold
type Product struct {
	shared.BaseEntity
	Code        string
	Name        string
	Description string
	Category    string
	UnitPrice   decimal.Decimal
	IsActive    bool
}

// NewProduct creates a new active product
func NewProduct(code, name string, unitPrice decimal.Decimal) (*Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Code:       strings.ToUpper(code),
		Name:       name,
		UnitPrice:  unitPrice,
		IsActive:   true,
	}, nil
}

// SetName renames the product
func (p *Product) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	p.Name = name
	p.Touch()
	return nil
}

// SetDescription sets the free-form description
func (p *Product) SetDescription(description string) error {
	if len(description) > 1000 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 1000 characters")
	}
	p.Description = description
	p.Touch()
	return nil
}

// SetCategory sets the product family (tote, backpack, sling)
func (p *Product) SetCategory(category string) error {
	if len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}
	p.Category = strings.TrimSpace(category)
	p.Touch()
	return nil
}

// SetUnitPrice changes the selling price
func (p *Product) SetUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	p.UnitPrice = price
	p.Touch()
	return nil
}

// Activate makes the product sellable again
func (p *Product) Activate() error {
	if p.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}
	p.IsActive = true
	p.Touch()
	return nil
}

// Deactivate retires the product from sale
func (p *Product) Deactivate() error {
	if !p.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}
	p.IsActive = false
	p.Touch()
	return nil
}
