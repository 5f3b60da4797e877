package inventory

import (
	"strings"
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StockOpnameStatus represents the lifecycle state of a stock opname
// (physical inventory count) document
type StockOpnameStatus string

const (
	OpnameStatusPlanned    StockOpnameStatus = "planned"
	OpnameStatusInProgress StockOpnameStatus = "in_progress"
	OpnameStatusCompleted  StockOpnameStatus = "completed"
	OpnameStatusCancelled  StockOpnameStatus = "cancelled"
)

// IsValid checks if the status is a known value
func (s StockOpnameStatus) IsValid() bool {
	switch s {
	case OpnameStatusPlanned, OpnameStatusInProgress, OpnameStatusCompleted, OpnameStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation
func (s StockOpnameStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s StockOpnameStatus) CanTransitionTo(target StockOpnameStatus) bool {
	switch s {
	case OpnameStatusPlanned:
		return target == OpnameStatusInProgress || target == OpnameStatusCancelled
	case OpnameStatusInProgress:
		return target == OpnameStatusCompleted || target == OpnameStatusCancelled
	case OpnameStatusCompleted, OpnameStatusCancelled:
		return false // terminal states
	}
	return false
}

// StockOpnameItem is a line in an opname document: the system stock
// snapshot for one material, and the physically counted quantity once
// the count happens.
type StockOpnameItem struct {
	shared.BaseEntity
	StockOpnameID int64
	RawMaterialID int64
	SystemStock   decimal.Decimal
	PhysicalStock *decimal.Decimal
	Difference    *decimal.Decimal
	Notes         string
	CountedAt     *time.Time
}

// NewStockOpnameItem snapshots the system stock for a material
func NewStockOpnameItem(opnameID, rawMaterialID int64, systemStock decimal.Decimal) (*StockOpnameItem, error) {
	if rawMaterialID == 0 {
		return nil, shared.NewDomainError("INVALID_MATERIAL", "Opname item must reference a raw material")
	}
	return &StockOpnameItem{
		BaseEntity:    shared.NewBaseEntity(),
		StockOpnameID: opnameID,
		RawMaterialID: rawMaterialID,
		SystemStock:   systemStock,
	}, nil
}

// RecordCount records the physical count. The difference is always
// physical minus system; a shortage comes out negative.
func (i *StockOpnameItem) RecordCount(physical decimal.Decimal, notes string) error {
	if physical.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Physical stock cannot be negative")
	}
	if len(notes) > 500 {
		return shared.NewDomainError("INVALID_NOTES", "Notes cannot exceed 500 characters")
	}

	diff := physical.Sub(i.SystemStock)
	now := time.Now().UTC()
	i.PhysicalStock = &physical
	i.Difference = &diff
	i.Notes = notes
	i.CountedAt = &now
	i.Touch()
	return nil
}

// IsCounted reports whether the physical count has been recorded
func (i *StockOpnameItem) IsCounted() bool {
	return i.PhysicalStock != nil
}

// HasDifference reports whether the count disagrees with the system
func (i *StockOpnameItem) HasDifference() bool {
	return i.Difference != nil && !i.Difference.IsZero()
}

// StockOpname is the aggregate root for a physical inventory count
type StockOpname struct {
	shared.BaseEntity
	OpnameNumber string
	Title        string
	Description  string
	UserID       int64
	Status       StockOpnameStatus
	PlannedDate  time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	Items        []StockOpnameItem
}

// NewStockOpname creates a planned opname document
func NewStockOpname(opnameNumber, title string, userID int64, plannedDate time.Time) (*StockOpname, error) {
	opnameNumber = strings.TrimSpace(opnameNumber)
	if opnameNumber == "" {
		return nil, shared.NewDomainError("INVALID_OPNAME_NUMBER", "Opname number cannot be empty")
	}
	if len(opnameNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_OPNAME_NUMBER", "Opname number cannot exceed 50 characters")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Opname title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Opname title cannot exceed 200 characters")
	}
	if userID == 0 {
		return nil, shared.NewDomainError("INVALID_USER", "Opname must record the responsible user")
	}
	if plannedDate.IsZero() {
		plannedDate = shared.Today()
	}

	return &StockOpname{
		BaseEntity:   shared.NewBaseEntity(),
		OpnameNumber: opnameNumber,
		Title:        title,
		UserID:       userID,
		Status:       OpnameStatusPlanned,
		PlannedDate:  shared.DateOnly(plannedDate),
		Items:        make([]StockOpnameItem, 0),
	}, nil
}

// AddItem snapshots a material's system stock into the document.
// Items can only be added while the count is still open.
func (so *StockOpname) AddItem(rawMaterialID int64, systemStock decimal.Decimal) (*StockOpnameItem, error) {
	if so.Status != OpnameStatusPlanned && so.Status != OpnameStatusInProgress {
		return nil, shared.NewDomainError("INVALID_STATUS", "Items can only be added to a planned or in-progress opname")
	}
	for i := range so.Items {
		if so.Items[i].RawMaterialID == rawMaterialID {
			return nil, shared.NewDomainError("DUPLICATE_ITEM", "Material is already part of this opname")
		}
	}

	item, err := NewStockOpnameItem(so.ID, rawMaterialID, systemStock)
	if err != nil {
		return nil, err
	}
	so.Items = append(so.Items, *item)
	so.Touch()
	return item, nil
}

// Start moves the opname into counting
func (so *StockOpname) Start() error {
	if !so.Status.CanTransitionTo(OpnameStatusInProgress) {
		return shared.NewDomainError("INVALID_STATUS", "Opname cannot be started from status "+so.Status.String())
	}
	now := time.Now().UTC()
	so.Status = OpnameStatusInProgress
	so.StartedAt = &now
	so.Touch()
	return nil
}

// Complete finishes the count. Every item must have been counted.
func (so *StockOpname) Complete() error {
	if !so.Status.CanTransitionTo(OpnameStatusCompleted) {
		return shared.NewDomainError("INVALID_STATUS", "Opname cannot be completed from status "+so.Status.String())
	}
	for i := range so.Items {
		if !so.Items[i].IsCounted() {
			return shared.NewDomainError("UNCOUNTED_ITEMS", "All items must be counted before completing the opname")
		}
	}
	now := time.Now().UTC()
	so.Status = OpnameStatusCompleted
	so.CompletedAt = &now
	so.Touch()
	return nil
}

// Cancel abandons the count
func (so *StockOpname) Cancel() error {
	if !so.Status.CanTransitionTo(OpnameStatusCancelled) {
		return shared.NewDomainError("INVALID_STATUS", "Opname cannot be cancelled from status "+so.Status.String())
	}
	so.Status = OpnameStatusCancelled
	so.Touch()
	return nil
}

// SetDescription sets the free-form description
func (so *StockOpname) SetDescription(description string) error {
	if len(description) > 1000 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 1000 characters")
	}
	so.Description = description
	so.Touch()
	return nil
}

// CountedItems returns how many items have a recorded physical count
func (so *StockOpname) CountedItems() int {
	n := 0
	for i := range so.Items {
		if so.Items[i].IsCounted() {
			n++
		}
	}
	return n
}

// DifferenceItems returns how many counted items disagree with the system
func (so *StockOpname) DifferenceItems() int {
	n := 0
	for i := range so.Items {
		if so.Items[i].HasDifference() {
			n++
		}
	}
	return n
}
