package inventory

import (
	"strings"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RawMaterial represents a purchasable input to bag production
// (leather, fabric, zippers, thread, buckles).
type RawMaterial struct {
	shared.BaseEntity
	Code            string
	Name            string
	Description     string
	Unit            string
	UnitPrice       decimal.Decimal
	CurrentStock    decimal.Decimal
	MinimumStock    decimal.Decimal
	MaximumStock    *decimal.Decimal
	SupplierName    string
	SupplierContact string
	IsActive        bool
}

// NewRawMaterial creates a new active raw material with zero stock
func NewRawMaterial(code, name, unit string, unitPrice decimal.Decimal) (*RawMaterial, error) {
	if err := validateMaterialCode(code); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Material name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Material name cannot exceed 200 characters")
	}
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit of measure cannot be empty")
	}
	if len(unit) > 20 {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit of measure cannot exceed 20 characters")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &RawMaterial{
		BaseEntity:   shared.NewBaseEntity(),
		Code:         strings.ToUpper(strings.TrimSpace(code)),
		Name:         name,
		Unit:         unit,
		UnitPrice:    unitPrice,
		CurrentStock: decimal.Zero,
		MinimumStock: decimal.Zero,
		IsActive:     true,
	}, nil
}

// SetName renames the material
func (m *RawMaterial) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Material name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Material name cannot exceed 200 characters")
	}
	m.Name = name
	m.Touch()
	return nil
}

// SetUnitPrice changes the reference purchase price
func (m *RawMaterial) SetUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	m.UnitPrice = price
	m.Touch()
	return nil
}

// SetStockLevels sets the reorder thresholds. Maximum, when present,
// must not be below minimum.
func (m *RawMaterial) SetStockLevels(minimum decimal.Decimal, maximum *decimal.Decimal) error {
	if minimum.IsNegative() {
		return shared.NewDomainError("INVALID_STOCK_LEVEL", "Minimum stock cannot be negative")
	}
	if maximum != nil && maximum.LessThan(minimum) {
		return shared.NewDomainError("INVALID_STOCK_LEVEL", "Maximum stock cannot be below minimum stock")
	}
	m.MinimumStock = minimum
	m.MaximumStock = maximum
	m.Touch()
	return nil
}

// SetSupplier sets the supplier contact information
func (m *RawMaterial) SetSupplier(name, contact string) error {
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_SUPPLIER", "Supplier name cannot exceed 200 characters")
	}
	if len(contact) > 200 {
		return shared.NewDomainError("INVALID_SUPPLIER", "Supplier contact cannot exceed 200 characters")
	}
	m.SupplierName = strings.TrimSpace(name)
	m.SupplierContact = strings.TrimSpace(contact)
	m.Touch()
	return nil
}

// ApplyMovement adjusts the cached stock level for a recorded movement.
// Stock is allowed to go negative; the ledger is the source of truth and
// corrections arrive as adjustment movements. Adjustments add their
// signed quantity like inflows, so a negative adjustment decreases stock.
func (m *RawMaterial) ApplyMovement(movementType MovementType, quantity decimal.Decimal) error {
	switch movementType {
	case MovementIn, MovementAdjustment:
		m.CurrentStock = m.CurrentStock.Add(quantity)
	case MovementOut:
		m.CurrentStock = m.CurrentStock.Sub(quantity)
	default:
		return shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Unknown movement type")
	}
	m.Touch()
	return nil
}

// SetCurrentStock overwrites the cached stock level, used when the
// ledger is replayed from scratch.
func (m *RawMaterial) SetCurrentStock(stock decimal.Decimal) {
	m.CurrentStock = stock
	m.Touch()
}

// IsLowStock reports whether the cached stock has fallen below the
// reorder threshold.
func (m *RawMaterial) IsLowStock() bool {
	return m.CurrentStock.LessThan(m.MinimumStock)
}

// Activate marks the material as purchasable again
func (m *RawMaterial) Activate() error {
	if m.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Material is already active")
	}
	m.IsActive = true
	m.Touch()
	return nil
}

// Deactivate retires the material from purchasing
func (m *RawMaterial) Deactivate() error {
	if !m.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Material is already inactive")
	}
	m.IsActive = false
	m.Touch()
	return nil
}

func validateMaterialCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Material code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Material code cannot exceed 50 characters")
	}
	return nil
}
