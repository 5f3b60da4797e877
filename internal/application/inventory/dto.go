package inventory

import (
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Raw material DTOs
// =============================================================================

// CreateRawMaterialRequest represents a request to create a raw material
type CreateRawMaterialRequest struct {
	Code            string           `json:"code" binding:"required,min=1,max=50"`
	Name            string           `json:"name" binding:"required,min=1,max=200"`
	Description     string           `json:"description" binding:"max=1000"`
	Unit            string           `json:"unit" binding:"required,min=1,max=20"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	MinimumStock    *decimal.Decimal `json:"minimum_stock"`
	MaximumStock    *decimal.Decimal `json:"maximum_stock"`
	SupplierName    string           `json:"supplier_name" binding:"max=200"`
	SupplierContact string           `json:"supplier_contact" binding:"max=200"`
}

// UpdateRawMaterialRequest represents a request to update a raw material.
// Nil fields are left unchanged.
type UpdateRawMaterialRequest struct {
	Name            *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description     *string          `json:"description" binding:"omitempty,max=1000"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	MinimumStock    *decimal.Decimal `json:"minimum_stock"`
	MaximumStock    *decimal.Decimal `json:"maximum_stock"`
	SupplierName    *string          `json:"supplier_name" binding:"omitempty,max=200"`
	SupplierContact *string          `json:"supplier_contact" binding:"omitempty,max=200"`
	IsActive        *bool            `json:"is_active"`
}

// RawMaterialResponse represents a raw material in API responses
type RawMaterialResponse struct {
	ID              int64            `json:"id"`
	Code            string           `json:"code"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Unit            string           `json:"unit"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	CurrentStock    decimal.Decimal  `json:"current_stock"`
	MinimumStock    decimal.Decimal  `json:"minimum_stock"`
	MaximumStock    *decimal.Decimal `json:"maximum_stock,omitempty"`
	SupplierName    string           `json:"supplier_name"`
	SupplierContact string           `json:"supplier_contact"`
	IsLowStock      bool             `json:"is_low_stock"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// RawMaterialListFilter represents filter options for the material list
type RawMaterialListFilter struct {
	Search   string `form:"search"`
	Unit     string `form:"unit"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToRawMaterialResponse converts a domain RawMaterial to a response
func ToRawMaterialResponse(m *inventory.RawMaterial) RawMaterialResponse {
	return RawMaterialResponse{
		ID:              m.ID,
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
		IsLowStock:      m.IsLowStock(),
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToRawMaterialResponses converts a slice of domain RawMaterials to responses
func ToRawMaterialResponses(materials []inventory.RawMaterial) []RawMaterialResponse {
	responses := make([]RawMaterialResponse, len(materials))
	for i := range materials {
		responses[i] = ToRawMaterialResponse(&materials[i])
	}
	return responses
}

// =============================================================================
// Movement DTOs
// =============================================================================

// RecordMovementRequest represents a request to append a ledger entry
type RecordMovementRequest struct {
	RawMaterialID   int64           `json:"raw_material_id" binding:"required"`
	MovementType    string          `json:"movement_type" binding:"required,oneof=in out adjustment"`
	// Adjustments may carry a negative quantity; sign rules are
	// enforced per movement type in the domain.
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	ReferenceNumber string          `json:"reference_number" binding:"max=100"`
	Notes           string          `json:"notes" binding:"max=500"`
	MovementDate    *time.Time      `json:"movement_date"`
}

// MovementResponse represents a ledger entry in API responses
type MovementResponse struct {
	ID              int64           `json:"id"`
	RawMaterialID   int64           `json:"raw_material_id"`
	UserID          int64           `json:"user_id"`
	MovementType    string          `json:"movement_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalValue      decimal.Decimal `json:"total_value"`
	ReferenceNumber string          `json:"reference_number"`
	Notes           string          `json:"notes"`
	MovementDate    time.Time       `json:"movement_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// MovementListFilter represents filter options for the movement ledger
type MovementListFilter struct {
	RawMaterialID int64      `form:"raw_material_id"`
	MovementType  string     `form:"movement_type" binding:"omitempty,oneof=in out adjustment"`
	DateFrom      *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo        *time.Time `form:"date_to" time_format:"2006-01-02"`
	Page          int        `form:"page" binding:"omitempty,min=1"`
	PageSize      int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToMovementResponse converts a domain InventoryMovement to a response
func ToMovementResponse(m *inventory.InventoryMovement) MovementResponse {
	return MovementResponse{
		ID:              m.ID,
		RawMaterialID:   m.RawMaterialID,
		UserID:          m.UserID,
		MovementType:    string(m.MovementType),
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		TotalValue:      m.TotalValue,
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		MovementDate:    m.MovementDate,
		CreatedAt:       m.CreatedAt,
	}
}

// ToMovementResponses converts a slice of domain movements to responses
func ToMovementResponses(movements []inventory.InventoryMovement) []MovementResponse {
	responses := make([]MovementResponse, len(movements))
	for i := range movements {
		responses[i] = ToMovementResponse(&movements[i])
	}
	return responses
}

// =============================================================================
// Stock opname DTOs
// =============================================================================

// CreateStockOpnameRequest represents a request to plan an opname.
// When OpnameNumber is empty a document number is generated.
type CreateStockOpnameRequest struct {
	OpnameNumber string     `json:"opname_number" binding:"max=50"`
	Title        string     `json:"title" binding:"required,min=1,max=200"`
	Description  string     `json:"description" binding:"max=1000"`
	PlannedDate  *time.Time `json:"planned_date" time_format:"2006-01-02"`
}

// UpdateStockOpnameRequest represents a request to update an opname header.
// Nil fields are left unchanged.
type UpdateStockOpnameRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=1000"`
	PlannedDate *time.Time `json:"planned_date" time_format:"2006-01-02"`
}

// AddOpnameItemRequest represents a request to add a material to an opname
type AddOpnameItemRequest struct {
	RawMaterialID int64 `json:"raw_material_id" binding:"required"`
}

// CountOpnameItemRequest represents a physical count for one opname line
type CountOpnameItemRequest struct {
	PhysicalStock decimal.Decimal `json:"physical_stock"`
	Notes         string          `json:"notes" binding:"max=500"`
}

// StockOpnameItemResponse represents an opname line in API responses
type StockOpnameItemResponse struct {
	ID            int64            `json:"id"`
	StockOpnameID int64            `json:"stock_opname_id"`
	RawMaterialID int64            `json:"raw_material_id"`
	SystemStock   decimal.Decimal  `json:"system_stock"`
	PhysicalStock *decimal.Decimal `json:"physical_stock,omitempty"`
	Difference    *decimal.Decimal `json:"difference,omitempty"`
	Notes         string           `json:"notes"`
	CountedAt     *time.Time       `json:"counted_at,omitempty"`
}

// StockOpnameResponse represents an opname document in API responses
type StockOpnameResponse struct {
	ID           int64                     `json:"id"`
	OpnameNumber string                    `json:"opname_number"`
	Title        string                    `json:"title"`
	Description  string                    `json:"description"`
	UserID       int64                     `json:"user_id"`
	Status       string                    `json:"status"`
	PlannedDate  time.Time                 `json:"planned_date"`
	StartedAt    *time.Time                `json:"started_at,omitempty"`
	CompletedAt  *time.Time                `json:"completed_at,omitempty"`
	Items        []StockOpnameItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}

// StockOpnameListFilter represents filter options for the opname list
type StockOpnameListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=planned in_progress completed cancelled"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToStockOpnameItemResponse converts a domain opname item to a response
func ToStockOpnameItemResponse(it *inventory.StockOpnameItem) StockOpnameItemResponse {
	return StockOpnameItemResponse{
		ID:            it.ID,
		StockOpnameID: it.StockOpnameID,
		RawMaterialID: it.RawMaterialID,
		SystemStock:   it.SystemStock,
		PhysicalStock: it.PhysicalStock,
		Difference:    it.Difference,
		Notes:         it.Notes,
		CountedAt:     it.CountedAt,
	}
}

// ToStockOpnameResponse converts a domain StockOpname to a response
func ToStockOpnameResponse(o *inventory.StockOpname) StockOpnameResponse {
	items := make([]StockOpnameItemResponse, len(o.Items))
	for i := range o.Items {
		items[i] = ToStockOpnameItemResponse(&o.Items[i])
	}
	return StockOpnameResponse{
		ID:           o.ID,
		OpnameNumber: o.OpnameNumber,
		Title:        o.Title,
		Description:  o.Description,
		UserID:       o.UserID,
		Status:       o.Status.String(),
		PlannedDate:  o.PlannedDate,
		StartedAt:    o.StartedAt,
		CompletedAt:  o.CompletedAt,
		Items:        items,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// ToStockOpnameResponses converts a slice of domain opnames to responses
func ToStockOpnameResponses(opnames []inventory.StockOpname) []StockOpnameResponse {
	responses := make([]StockOpnameResponse, len(opnames))
	for i := range opnames {
		responses[i] = ToStockOpnameResponse(&opnames[i])
	}
	return responses
}
