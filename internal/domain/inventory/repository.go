package inventory

import (
	"context"
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
)

// RawMaterialRepository defines persistence operations for raw materials
type RawMaterialRepository interface {
	shared.Repository[RawMaterial]
	FindByCode(ctx context.Context, code string) (*RawMaterial, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	FindLowStock(ctx context.Context, filter shared.Filter) ([]RawMaterial, error)
}

// MovementFilter narrows ledger queries
type MovementFilter struct {
	RawMaterialID int64
	MovementType  MovementType
	DateFrom      *time.Time
	DateTo        *time.Time
	Page          int
	PageSize      int
}

// InventoryMovementRepository defines persistence operations for the
// append-only movement ledger. There is deliberately no update or
// delete operation.
type InventoryMovementRepository interface {
	Append(ctx context.Context, movement *InventoryMovement) error
	FindByID(ctx context.Context, id int64) (*InventoryMovement, error)
	FindAll(ctx context.Context, filter MovementFilter) ([]InventoryMovement, error)
	Count(ctx context.Context, filter MovementFilter) (int64, error)
	FindByMaterial(ctx context.Context, rawMaterialID int64) ([]InventoryMovement, error)
}

// StockOpnameRepository defines persistence operations for opname
// documents and their items
type StockOpnameRepository interface {
	shared.Repository[StockOpname]
	FindByNumber(ctx context.Context, opnameNumber string) (*StockOpname, error)
	ExistsByNumber(ctx context.Context, opnameNumber string) (bool, error)
	NextSequence(ctx context.Context, prefix string) (int, error)
}
