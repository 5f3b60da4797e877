package finance

import (
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest represents a request to create a financial category
type CreateCategoryRequest struct {
	Name            string `json:"name" binding:"required,max=200"`
	TransactionType string `json:"transaction_type" binding:"required,oneof=income expense"`
	Description     string `json:"description" binding:"max=500"`
}

// UpdateCategoryRequest represents a request to update a financial
// category. Nil fields are left unchanged. The transaction type of a
// category is fixed at creation.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// CategoryResponse represents a financial category in API responses
type CategoryResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	TransactionType string    `json:"transaction_type"`
	Description     string    `json:"description"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CategoryListFilter represents filter options for the category list
type CategoryListFilter struct {
	Page            int    `form:"page"`
	PageSize        int    `form:"page_size"`
	OrderBy         string `form:"order_by"`
	OrderDir        string `form:"order_dir"`
	Search          string `form:"search"`
	TransactionType string `form:"transaction_type" binding:"omitempty,oneof=income expense"`
	IsActive        *bool  `form:"is_active"`
}

// ToCategoryResponse converts a domain category to a response DTO
func ToCategoryResponse(c *finance.FinancialCategory) CategoryResponse {
	return CategoryResponse{
		ID:              c.ID,
		Name:            c.Name,
		TransactionType: c.TransactionType.String(),
		Description:     c.Description,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of domain categories
func ToCategoryResponses(categories []finance.FinancialCategory) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// CreateTransactionRequest represents a request to record a financial
// transaction. When TransactionNumber is empty a document number is
// generated.
type CreateTransactionRequest struct {
	TransactionNumber string          `json:"transaction_number" binding:"max=50"`
	CategoryID        int64           `json:"category_id" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Description       string          `json:"description" binding:"required,max=1000"`
	ReferenceNumber   string          `json:"reference_number" binding:"max=100"`
	TransactionDate   *time.Time      `json:"transaction_date" time_format:"2006-01-02"`
	PaymentMethod     string          `json:"payment_method" binding:"max=100"`
}

// UpdateTransactionRequest represents a request to update a recorded
// transaction. Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	CategoryID      *int64           `json:"category_id"`
	Amount          *decimal.Decimal `json:"amount"`
	Description     *string          `json:"description" binding:"omitempty,max=1000"`
	ReferenceNumber *string          `json:"reference_number" binding:"omitempty,max=100"`
	TransactionDate *time.Time       `json:"transaction_date" time_format:"2006-01-02"`
	PaymentMethod   *string          `json:"payment_method" binding:"omitempty,max=100"`
}

// TransactionResponse represents a financial transaction in API responses
type TransactionResponse struct {
	ID                int64           `json:"id"`
	TransactionNumber string          `json:"transaction_number"`
	UserID            int64           `json:"user_id"`
	CategoryID        int64           `json:"category_id"`
	TransactionType   string          `json:"transaction_type"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	ReferenceNumber   string          `json:"reference_number"`
	TransactionDate   time.Time       `json:"transaction_date"`
	PaymentMethod     string          `json:"payment_method"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TransactionListFilter represents filter options for the transaction list
type TransactionListFilter struct {
	Page            int        `form:"page"`
	PageSize        int        `form:"page_size"`
	OrderBy         string     `form:"order_by"`
	OrderDir        string     `form:"order_dir"`
	Search          string     `form:"search"`
	TransactionType string     `form:"transaction_type" binding:"omitempty,oneof=income expense"`
	CategoryID      int64      `form:"category_id"`
	DateFrom        *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo          *time.Time `form:"date_to" time_format:"2006-01-02"`
}

// SummaryRequest bounds the period of a cash flow summary. Nil bounds
// are open ended.
type SummaryRequest struct {
	DateFrom *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"date_to" time_format:"2006-01-02"`
}

// SummaryResponse represents aggregated cash flow over a period
type SummaryResponse struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
}

// ToTransactionResponse converts a domain transaction to a response DTO
func ToTransactionResponse(t *finance.FinancialTransaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID,
		TransactionNumber: t.TransactionNumber,
		UserID:            t.UserID,
		CategoryID:        t.CategoryID,
		TransactionType:   t.TransactionType.String(),
		Amount:            t.Amount,
		Description:       t.Description,
		ReferenceNumber:   t.ReferenceNumber,
		TransactionDate:   t.TransactionDate,
		PaymentMethod:     t.PaymentMethod,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions
func ToTransactionResponses(transactions []finance.FinancialTransaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = ToTransactionResponse(&transactions[i])
	}
	return responses
}
