package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/inventory"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRawMaterialRepository implements RawMaterialRepository using GORM
type GormRawMaterialRepository struct {
	db *gorm.DB
}

// NewGormRawMaterialRepository creates a new GormRawMaterialRepository
func NewGormRawMaterialRepository(db *gorm.DB) *GormRawMaterialRepository {
	return &GormRawMaterialRepository{db: db}
}

// FindByID finds a raw material by its ID
func (r *GormRawMaterialRepository) FindByID(ctx context.Context, id int64) (*inventory.RawMaterial, error) {
	var model models.RawMaterialModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a raw material by its code
func (r *GormRawMaterialRepository) FindByCode(ctx context.Context, code string) (*inventory.RawMaterial, error) {
	var model models.RawMaterialModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all raw materials matching the filter
func (r *GormRawMaterialRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.RawMaterial, error) {
	var materialModels []models.RawMaterialModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.RawMaterialModel{}), filter)

	if err := query.Find(&materialModels).Error; err != nil {
		return nil, err
	}

	materials := make([]inventory.RawMaterial, len(materialModels))
	for i, model := range materialModels {
		materials[i] = *model.ToDomain()
	}
	return materials, nil
}

// FindLowStock finds active materials whose current stock is below the minimum
func (r *GormRawMaterialRepository) FindLowStock(ctx context.Context, filter shared.Filter) ([]inventory.RawMaterial, error) {
	var materialModels []models.RawMaterialModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.RawMaterialModel{}).
			Where("is_active = ? AND current_stock < minimum_stock", true),
		filter,
	)

	if err := query.Find(&materialModels).Error; err != nil {
		return nil, err
	}

	materials := make([]inventory.RawMaterial, len(materialModels))
	for i, model := range materialModels {
		materials[i] = *model.ToDomain()
	}
	return materials, nil
}

// Save creates or updates a raw material
func (r *GormRawMaterialRepository) Save(ctx context.Context, material *inventory.RawMaterial) error {
	model := models.RawMaterialModelFromDomain(material)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	material.ID = model.ID
	return nil
}

// Delete deletes a raw material
func (r *GormRawMaterialRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.RawMaterialModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts raw materials matching the filter
func (r *GormRawMaterialRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.RawMaterialModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if a raw material with the given code exists
func (r *GormRawMaterialRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.RawMaterialModel{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormRawMaterialRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, RawMaterialSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormRawMaterialRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("code ILIKE ? OR name ILIKE ? OR supplier_name ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "unit":
			query = query.Where("unit = ?", value)
		case "supplier_name":
			query = query.Where("supplier_name = ?", value)
		}
	}

	return query
}

// Ensure GormRawMaterialRepository implements RawMaterialRepository
var _ inventory.RawMaterialRepository = (*GormRawMaterialRepository)(nil)
