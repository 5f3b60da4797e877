package models

import (
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// RawMaterialModel is the persistence model for the RawMaterial domain entity.
type RawMaterialModel struct {
	BaseModel
	Code            string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name            string           `gorm:"type:varchar(200);not null"`
	Description     string           `gorm:"type:text"`
	Unit            string           `gorm:"type:varchar(50);not null"`
	UnitPrice       decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	CurrentStock    decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	MinimumStock    decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	MaximumStock    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	SupplierName    string           `gorm:"type:varchar(200)"`
	SupplierContact string           `gorm:"type:varchar(200)"`
	IsActive        bool             `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (RawMaterialModel) TableName() string {
	return "raw_materials"
}

// ToDomain converts the persistence model to a domain RawMaterial entity.
func (m *RawMaterialModel) ToDomain() *inventory.RawMaterial {
	return &inventory.RawMaterial{
		BaseEntity:      m.BaseModel.ToDomain(),
		Code:            m.Code,
		Name:            m.Name,
		Description:     m.Description,
		Unit:            m.Unit,
		UnitPrice:       m.UnitPrice,
		CurrentStock:    m.CurrentStock,
		MinimumStock:    m.MinimumStock,
		MaximumStock:    m.MaximumStock,
		SupplierName:    m.SupplierName,
		SupplierContact: m.SupplierContact,
		IsActive:        m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain RawMaterial entity.
func (m *RawMaterialModel) FromDomain(r *inventory.RawMaterial) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.Code = r.Code
	m.Name = r.Name
	m.Description = r.Description
	m.Unit = r.Unit
	m.UnitPrice = r.UnitPrice
	m.CurrentStock = r.CurrentStock
	m.MinimumStock = r.MinimumStock
	m.MaximumStock = r.MaximumStock
	m.SupplierName = r.SupplierName
	m.SupplierContact = r.SupplierContact
	m.IsActive = r.IsActive
}

// RawMaterialModelFromDomain creates a new persistence model from a domain RawMaterial entity.
func RawMaterialModelFromDomain(r *inventory.RawMaterial) *RawMaterialModel {
	m := &RawMaterialModel{}
	m.FromDomain(r)
	return m
}

// InventoryMovementModel is the persistence model for the InventoryMovement ledger entry.
// Movements are append-only, so the model carries no UpdatedAt column.
type InventoryMovementModel struct {
	ID              int64                  `gorm:"primaryKey;autoIncrement"`
	RawMaterialID   int64                  `gorm:"not null;index"`
	UserID          int64                  `gorm:"not null;index"`
	MovementType    inventory.MovementType `gorm:"type:varchar(20);not null"`
	Quantity        decimal.Decimal        `gorm:"type:decimal(12,2);not null"`
	UnitPrice       decimal.Decimal        `gorm:"type:decimal(12,2);not null"`
	TotalValue      decimal.Decimal        `gorm:"type:decimal(12,2);not null"`
	ReferenceNumber string                 `gorm:"type:varchar(100)"`
	Notes           string                 `gorm:"type:text"`
	MovementDate    time.Time              `gorm:"not null;index"`
	CreatedAt       time.Time              `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InventoryMovementModel) TableName() string {
	return "inventory_movements"
}

// ToDomain converts the persistence model to a domain InventoryMovement entity.
func (m *InventoryMovementModel) ToDomain() *inventory.InventoryMovement {
	return &inventory.InventoryMovement{
		ID:              m.ID,
		RawMaterialID:   m.RawMaterialID,
		UserID:          m.UserID,
		MovementType:    m.MovementType,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		TotalValue:      m.TotalValue,
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		MovementDate:    m.MovementDate,
		CreatedAt:       m.CreatedAt,
	}
}

// InventoryMovementModelFromDomain creates a new persistence model from a domain
// InventoryMovement entity.
func InventoryMovementModelFromDomain(mv *inventory.InventoryMovement) *InventoryMovementModel {
	return &InventoryMovementModel{
		ID:              mv.ID,
		RawMaterialID:   mv.RawMaterialID,
		UserID:          mv.UserID,
		MovementType:    mv.MovementType,
		Quantity:        mv.Quantity,
		UnitPrice:       mv.UnitPrice,
		TotalValue:      mv.TotalValue,
		ReferenceNumber: mv.ReferenceNumber,
		Notes:           mv.Notes,
		MovementDate:    mv.MovementDate,
		CreatedAt:       mv.CreatedAt,
	}
}

// StockOpnameModel is the persistence model for the StockOpname aggregate root.
type StockOpnameModel struct {
	BaseModel
	OpnameNumber string                      `gorm:"type:varchar(50);not null;uniqueIndex"`
	Title        string                      `gorm:"type:varchar(200);not null"`
	Description  string                      `gorm:"type:text"`
	UserID       int64                       `gorm:"not null;index"`
	Status       inventory.StockOpnameStatus `gorm:"type:varchar(20);not null;default:'planned'"`
	PlannedDate  time.Time                   `gorm:"not null"`
	StartedAt    *time.Time                  `gorm:""`
	CompletedAt  *time.Time                  `gorm:""`
	Items        []StockOpnameItemModel      `gorm:"foreignKey:StockOpnameID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (StockOpnameModel) TableName() string {
	return "stock_opnames"
}

// StockOpnameItemModel is the persistence model for a single counted line of an opname.
type StockOpnameItemModel struct {
	BaseModel
	StockOpnameID int64            `gorm:"not null;uniqueIndex:idx_opname_material,priority:1"`
	RawMaterialID int64            `gorm:"not null;uniqueIndex:idx_opname_material,priority:2"`
	SystemStock   decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	PhysicalStock *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Difference    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Notes         string           `gorm:"type:text"`
	CountedAt     *time.Time       `gorm:""`
}

// TableName returns the table name for GORM
func (StockOpnameItemModel) TableName() string {
	return "stock_opname_items"
}

// ToDomain converts the persistence model to a domain StockOpname aggregate.
func (m *StockOpnameModel) ToDomain() *inventory.StockOpname {
	items := make([]inventory.StockOpnameItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = *it.ToDomain()
	}
	return &inventory.StockOpname{
		BaseEntity:   m.BaseModel.ToDomain(),
		OpnameNumber: m.OpnameNumber,
		Title:        m.Title,
		Description:  m.Description,
		UserID:       m.UserID,
		Status:       m.Status,
		PlannedDate:  m.PlannedDate,
		StartedAt:    m.StartedAt,
		CompletedAt:  m.CompletedAt,
		Items:        items,
	}
}

// FromDomain populates the persistence model from a domain StockOpname aggregate.
func (m *StockOpnameModel) FromDomain(o *inventory.StockOpname) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.OpnameNumber = o.OpnameNumber
	m.Title = o.Title
	m.Description = o.Description
	m.UserID = o.UserID
	m.Status = o.Status
	m.PlannedDate = o.PlannedDate
	m.StartedAt = o.StartedAt
	m.CompletedAt = o.CompletedAt
	m.Items = make([]StockOpnameItemModel, len(o.Items))
	for i := range o.Items {
		m.Items[i].FromDomain(&o.Items[i])
	}
}

// StockOpnameModelFromDomain creates a new persistence model from a domain StockOpname.
func StockOpnameModelFromDomain(o *inventory.StockOpname) *StockOpnameModel {
	m := &StockOpnameModel{}
	m.FromDomain(o)
	return m
}

// ToDomain converts the persistence model to a domain StockOpnameItem entity.
func (m *StockOpnameItemModel) ToDomain() *inventory.StockOpnameItem {
	return &inventory.StockOpnameItem{
		BaseEntity:    m.BaseModel.ToDomain(),
		StockOpnameID: m.StockOpnameID,
		RawMaterialID: m.RawMaterialID,
		SystemStock:   m.SystemStock,
		PhysicalStock: m.PhysicalStock,
		Difference:    m.Difference,
		Notes:         m.Notes,
		CountedAt:     m.CountedAt,
	}
}

// FromDomain populates the persistence model from a domain StockOpnameItem entity.
func (m *StockOpnameItemModel) FromDomain(it *inventory.StockOpnameItem) {
	m.FromDomainBaseEntity(it.BaseEntity)
	m.StockOpnameID = it.StockOpnameID
	m.RawMaterialID = it.RawMaterialID
	m.SystemStock = it.SystemStock
	m.PhysicalStock = it.PhysicalStock
	m.Difference = it.Difference
	m.Notes = it.Notes
	m.CountedAt = it.CountedAt
}
