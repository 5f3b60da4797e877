package inventory

import (
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MovementType classifies an inventory ledger entry
type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
)

// IsValid checks if the movement type is a known value
func (t MovementType) IsValid() bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjustment:
		return true
	}
	return false
}

// InventoryMovement is an append-only ledger entry for a raw material.
// Entries are never updated or deleted; corrections are recorded as
// adjustment movements. The entry therefore carries no UpdatedAt.
type InventoryMovement struct {
	ID              int64
	RawMaterialID   int64
	UserID          int64
	MovementType    MovementType
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	TotalValue      decimal.Decimal
	ReferenceNumber string
	Notes           string
	MovementDate    time.Time
	CreatedAt       time.Time
}

// NewInventoryMovement creates a ledger entry. TotalValue is always
// derived from quantity and unit price, never accepted from callers.
func NewInventoryMovement(rawMaterialID, userID int64, movementType MovementType, quantity, unitPrice decimal.Decimal, movementDate time.Time) (*InventoryMovement, error) {
	if rawMaterialID == 0 {
		return nil, shared.NewDomainError("INVALID_MATERIAL", "Movement must reference a raw material")
	}
	if userID == 0 {
		return nil, shared.NewDomainError("INVALID_USER", "Movement must record the acting user")
	}
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Unknown movement type")
	}
	if movementType == MovementAdjustment {
		// Reconciliation may move stock in either direction, but a
		// zero adjustment records nothing.
		if quantity.IsZero() {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Adjustment quantity cannot be zero")
		}
	} else if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Movement quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if movementDate.IsZero() {
		movementDate = time.Now().UTC()
	}

	return &InventoryMovement{
		RawMaterialID: rawMaterialID,
		UserID:        userID,
		MovementType:  movementType,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		TotalValue:    quantity.Mul(unitPrice),
		MovementDate:  movementDate,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// SetReference attaches a document reference (PO number, delivery note)
func (m *InventoryMovement) SetReference(reference string) error {
	if len(reference) > 100 {
		return shared.NewDomainError("INVALID_REFERENCE", "Reference number cannot exceed 100 characters")
	}
	m.ReferenceNumber = reference
	return nil
}

// SetNotes attaches free-form notes
func (m *InventoryMovement) SetNotes(notes string) error {
	if len(notes) > 500 {
		return shared.NewDomainError("INVALID_NOTES", "Notes cannot exceed 500 characters")
	}
	m.Notes = notes
	return nil
}

// StockEffect returns the signed change this entry applies to the
// running stock: in and adjustment add their quantity (an adjustment
// quantity may itself be negative), out subtracts.
func (m *InventoryMovement) StockEffect() decimal.Decimal {
	if m.MovementType == MovementOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}

// ReplayStock folds a ledger into the final stock level by summing the
// signed effect of every entry.
func ReplayStock(movements []InventoryMovement) decimal.Decimal {
	stock := decimal.Zero
	for i := range movements {
		stock = stock.Add(movements[i].StockEffect())
	}
	return stock
}
