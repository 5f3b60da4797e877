package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/finance"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormFinancialTransactionRepository implements FinancialTransactionRepository using GORM
type GormFinancialTransactionRepository struct {
	db *gorm.DB
}

// NewGormFinancialTransactionRepository creates a new GormFinancialTransactionRepository
func NewGormFinancialTransactionRepository(db *gorm.DB) *GormFinancialTransactionRepository {
	return &GormFinancialTransactionRepository{db: db}
}

// FindByID finds a financial transaction by its ID
func (r *GormFinancialTransactionRepository) FindByID(ctx context.Context, id int64) (*finance.FinancialTransaction, error) {
	var model models.FinancialTransactionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a financial transaction by its document number
func (r *GormFinancialTransactionRepository) FindByNumber(ctx context.Context, transactionNumber string) (*finance.FinancialTransaction, error) {
	var model models.FinancialTransactionModel
	if err := r.db.WithContext(ctx).
		Where("transaction_number = ?", transactionNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds financial transactions matching the filter
func (r *GormFinancialTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.FinancialTransaction, error) {
	var transactionModels []models.FinancialTransactionModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.FinancialTransactionModel{}), filter)

	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]finance.FinancialTransaction, len(transactionModels))
	for i, model := range transactionModels {
		transactions[i] = *model.ToDomain()
	}
	return transactions, nil
}

// Save creates or updates a financial transaction
func (r *GormFinancialTransactionRepository) Save(ctx context.Context, transaction *finance.FinancialTransaction) error {
	model := models.FinancialTransactionModelFromDomain(transaction)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	transaction.ID = model.ID
	return nil
}

// Delete deletes a financial transaction
func (r *GormFinancialTransactionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.FinancialTransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts financial transactions matching the filter
func (r *GormFinancialTransactionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.FinancialTransactionModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByNumber checks if a transaction with the given number exists
func (r *GormFinancialTransactionRepository) ExistsByNumber(ctx context.Context, transactionNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FinancialTransactionModel{}).
		Where("transaction_number = ?", transactionNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NextSequence returns the next document sequence for numbers starting
// with the given prefix.
func (r *GormFinancialTransactionRepository) NextSequence(ctx context.Context, prefix string) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FinancialTransactionModel{}).
		Where("transaction_number LIKE ?", fmt.Sprintf("%s%%", prefix)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

// Summarize totals income and expense over an optional date range
func (r *GormFinancialTransactionRepository) Summarize(ctx context.Context, from, to *time.Time) (*finance.Summary, error) {
	type totalRow struct {
		TransactionType finance.TransactionType
		Total           decimal.Decimal
	}

	query := r.db.WithContext(ctx).
		Model(&models.FinancialTransactionModel{}).
		Select("transaction_type, COALESCE(SUM(amount), 0) AS total").
		Group("transaction_type")
	if from != nil {
		query = query.Where("transaction_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("transaction_date <= ?", *to)
	}

	var rows []totalRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	summary := &finance.Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, row := range rows {
		switch row.TransactionType {
		case finance.TransactionIncome:
			summary.TotalIncome = row.Total
		case finance.TransactionExpense:
			summary.TotalExpense = row.Total
		}
	}
	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}

// applyFilter applies filter options to the query
func (r *GormFinancialTransactionRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, FinancialTransactionSortFields, "transaction_date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormFinancialTransactionRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("transaction_number ILIKE ? OR description ILIKE ? OR reference_number ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "transaction_type":
			query = query.Where("transaction_type = ?", value)
		case "category_id":
			query = query.Where("category_id = ?", value)
		case "user_id":
			query = query.Where("user_id = ?", value)
		case "date_from":
			query = query.Where("transaction_date >= ?", value)
		case "date_to":
			query = query.Where("transaction_date <= ?", value)
		}
	}

	return query
}

// Ensure GormFinancialTransactionRepository implements FinancialTransactionRepository
var _ finance.FinancialTransactionRepository = (*GormFinancialTransactionRepository)(nil)
