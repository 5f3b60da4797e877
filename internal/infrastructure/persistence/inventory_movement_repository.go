package persistence

import (
	"context"
	"errors"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/inventory"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInventoryMovementRepository implements InventoryMovementRepository using GORM.
// The ledger is append-only: rows are only ever inserted.
type GormInventoryMovementRepository struct {
	db *gorm.DB
}

// NewGormInventoryMovementRepository creates a new GormInventoryMovementRepository
func NewGormInventoryMovementRepository(db *gorm.DB) *GormInventoryMovementRepository {
	return &GormInventoryMovementRepository{db: db}
}

// Append inserts a ledger entry and applies its stock effect to the
// material's current stock in the same transaction.
func (r *GormInventoryMovementRepository) Append(ctx context.Context, movement *inventory.InventoryMovement) error {
	model := models.InventoryMovementModelFromDomain(movement)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var material models.RawMaterialModel
		if err := tx.First(&material, "id = ?", movement.RawMaterialID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if err := tx.Create(model).Error; err != nil {
			return err
		}

		newStock := material.CurrentStock.Add(movement.StockEffect())
		return tx.Model(&models.RawMaterialModel{}).
			Where("id = ?", movement.RawMaterialID).
			Update("current_stock", newStock).Error
	})
	if err != nil {
		return err
	}

	movement.ID = model.ID
	return nil
}

// FindByID finds a movement by its ID
func (r *GormInventoryMovementRepository) FindByID(ctx context.Context, id int64) (*inventory.InventoryMovement, error) {
	var model models.InventoryMovementModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds movements matching the filter, newest first
func (r *GormInventoryMovementRepository) FindAll(ctx context.Context, filter inventory.MovementFilter) ([]inventory.InventoryMovement, error) {
	var movementModels []models.InventoryMovementModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.InventoryMovementModel{}), filter).
		Order("movement_date DESC, id DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&movementModels).Error; err != nil {
		return nil, err
	}

	movements := make([]inventory.InventoryMovement, len(movementModels))
	for i, model := range movementModels {
		movements[i] = *model.ToDomain()
	}
	return movements, nil
}

// Count counts movements matching the filter
func (r *GormInventoryMovementRepository) Count(ctx context.Context, filter inventory.MovementFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.InventoryMovementModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByMaterial returns the full ledger for a material in chronological
// order, oldest first, suitable for replaying the stock level.
func (r *GormInventoryMovementRepository) FindByMaterial(ctx context.Context, rawMaterialID int64) ([]inventory.InventoryMovement, error) {
	var movementModels []models.InventoryMovementModel
	if err := r.db.WithContext(ctx).
		Where("raw_material_id = ?", rawMaterialID).
		Order("movement_date ASC, id ASC").
		Find(&movementModels).Error; err != nil {
		return nil, err
	}

	movements := make([]inventory.InventoryMovement, len(movementModels))
	for i, model := range movementModels {
		movements[i] = *model.ToDomain()
	}
	return movements, nil
}

// applyFilter applies movement filter conditions to the query
func (r *GormInventoryMovementRepository) applyFilter(query *gorm.DB, filter inventory.MovementFilter) *gorm.DB {
	if filter.RawMaterialID != 0 {
		query = query.Where("raw_material_id = ?", filter.RawMaterialID)
	}
	if filter.MovementType != "" {
		query = query.Where("movement_type = ?", filter.MovementType)
	}
	if filter.DateFrom != nil {
		query = query.Where("movement_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("movement_date <= ?", *filter.DateTo)
	}
	return query
}

// Ensure GormInventoryMovementRepository implements InventoryMovementRepository
var _ inventory.InventoryMovementRepository = (*GormInventoryMovementRepository)(nil)
