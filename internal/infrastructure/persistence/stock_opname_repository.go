package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/inventory"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStockOpnameRepository implements StockOpnameRepository using GORM
type GormStockOpnameRepository struct {
	db *gorm.DB
}

// NewGormStockOpnameRepository creates a new GormStockOpnameRepository
func NewGormStockOpnameRepository(db *gorm.DB) *GormStockOpnameRepository {
	return &GormStockOpnameRepository{db: db}
}

// FindByID finds a stock opname with its items by ID
func (r *GormStockOpnameRepository) FindByID(ctx context.Context, id int64) (*inventory.StockOpname, error) {
	var model models.StockOpnameModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a stock opname with its items by document number
func (r *GormStockOpnameRepository) FindByNumber(ctx context.Context, opnameNumber string) (*inventory.StockOpname, error) {
	var model models.StockOpnameModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("opname_number = ?", opnameNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds stock opnames matching the filter. Items are not loaded
// for list queries.
func (r *GormStockOpnameRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockOpname, error) {
	var opnameModels []models.StockOpnameModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.StockOpnameModel{}), filter)

	if err := query.Find(&opnameModels).Error; err != nil {
		return nil, err
	}

	opnames := make([]inventory.StockOpname, len(opnameModels))
	for i, model := range opnameModels {
		opnames[i] = *model.ToDomain()
	}
	return opnames, nil
}

// Save persists the opname and its items in a transaction. Items removed
// from the aggregate are deleted.
func (r *GormStockOpnameRepository) Save(ctx context.Context, opname *inventory.StockOpname) error {
	model := models.StockOpnameModelFromDomain(opname)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}

		keptIDs := make([]int64, 0, len(model.Items))
		for i := range model.Items {
			model.Items[i].StockOpnameID = model.ID
			if model.Items[i].ID != 0 {
				keptIDs = append(keptIDs, model.Items[i].ID)
			}
		}

		itemQuery := tx.Where("stock_opname_id = ?", model.ID)
		if len(keptIDs) > 0 {
			itemQuery = itemQuery.Where("id NOT IN ?", keptIDs)
		}
		if err := itemQuery.Delete(&models.StockOpnameItemModel{}).Error; err != nil {
			return err
		}

		for i := range model.Items {
			if err := tx.Save(&model.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	opname.ID = model.ID
	for i := range model.Items {
		opname.Items[i].ID = model.Items[i].ID
		opname.Items[i].StockOpnameID = model.Items[i].StockOpnameID
	}
	return nil
}

// Delete deletes a stock opname and its items
func (r *GormStockOpnameRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stock_opname_id = ?", id).
			Delete(&models.StockOpnameItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.StockOpnameModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts stock opnames matching the filter
func (r *GormStockOpnameRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.StockOpnameModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByNumber checks if an opname with the given number exists
func (r *GormStockOpnameRepository) ExistsByNumber(ctx context.Context, opnameNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.StockOpnameModel{}).
		Where("opname_number = ?", opnameNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NextSequence returns the next document sequence for numbers starting
// with the given prefix.
func (r *GormStockOpnameRepository) NextSequence(ctx context.Context, prefix string) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.StockOpnameModel{}).
		Where("opname_number LIKE ?", fmt.Sprintf("%s%%", prefix)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

// applyFilter applies filter options to the query
func (r *GormStockOpnameRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, StockOpnameSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormStockOpnameRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("opname_number ILIKE ? OR title ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "user_id":
			query = query.Where("user_id = ?", value)
		}
	}

	return query
}

// Ensure GormStockOpnameRepository implements StockOpnameRepository
var _ inventory.StockOpnameRepository = (*GormStockOpnameRepository)(nil)
