package persistence

import (
	"context"
	"errors"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/hr"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDepartmentRepository implements DepartmentRepository using GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new GormDepartmentRepository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// FindByID finds a department by its ID
func (r *GormDepartmentRepository) FindByID(ctx context.Context, id int64) (*hr.Department, error) {
	var model models.DepartmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a department by its name
func (r *GormDepartmentRepository) FindByName(ctx context.Context, name string) (*hr.Department, error) {
	var model models.DepartmentModel
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all departments matching the filter
func (r *GormDepartmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]hr.Department, error) {
	var departmentModels []models.DepartmentModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.DepartmentModel{}), filter)

	if err := query.Find(&departmentModels).Error; err != nil {
		return nil, err
	}

	departments := make([]hr.Department, len(departmentModels))
	for i, model := range departmentModels {
		departments[i] = *model.ToDomain()
	}
	return departments, nil
}

// Save creates or updates a department
func (r *GormDepartmentRepository) Save(ctx context.Context, department *hr.Department) error {
	model := models.DepartmentModelFromDomain(department)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	department.ID = model.ID
	return nil
}

// Delete deletes a department
func (r *GormDepartmentRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.DepartmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts departments matching the filter
func (r *GormDepartmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.DepartmentModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks if a department with the given name exists
func (r *GormDepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DepartmentModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormDepartmentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, DepartmentSortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormDepartmentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR manager_name ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	return query
}

// Ensure GormDepartmentRepository implements DepartmentRepository
var _ hr.DepartmentRepository = (*GormDepartmentRepository)(nil)
