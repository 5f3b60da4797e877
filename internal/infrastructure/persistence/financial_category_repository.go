package persistence

import (
	"context"
	"errors"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/finance"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormFinancialCategoryRepository implements FinancialCategoryRepository using GORM
type GormFinancialCategoryRepository struct {
	db *gorm.DB
}

// NewGormFinancialCategoryRepository creates a new GormFinancialCategoryRepository
func NewGormFinancialCategoryRepository(db *gorm.DB) *GormFinancialCategoryRepository {
	return &GormFinancialCategoryRepository{db: db}
}

// FindByID finds a financial category by its ID
func (r *GormFinancialCategoryRepository) FindByID(ctx context.Context, id int64) (*finance.FinancialCategory, error) {
	var model models.FinancialCategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all financial categories matching the filter
func (r *GormFinancialCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.FinancialCategory, error) {
	var categoryModels []models.FinancialCategoryModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.FinancialCategoryModel{}), filter)

	if err := query.Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]finance.FinancialCategory, len(categoryModels))
	for i, model := range categoryModels {
		categories[i] = *model.ToDomain()
	}
	return categories, nil
}

// Save creates or updates a financial category
func (r *GormFinancialCategoryRepository) Save(ctx context.Context, category *finance.FinancialCategory) error {
	model := models.FinancialCategoryModelFromDomain(category)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	category.ID = model.ID
	return nil
}

// Delete deletes a financial category
func (r *GormFinancialCategoryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.FinancialCategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts financial categories matching the filter
func (r *GormFinancialCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.FinancialCategoryModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormFinancialCategoryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, FinancialCategorySortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormFinancialCategoryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "transaction_type":
			query = query.Where("transaction_type = ?", value)
		}
	}

	return query
}

// Ensure GormFinancialCategoryRepository implements FinancialCategoryRepository
var _ finance.FinancialCategoryRepository = (*GormFinancialCategoryRepository)(nil)
