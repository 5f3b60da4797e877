package finance

import (
	"strings"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
)

// TransactionType classifies money flowing in or out
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// IsValid checks if the transaction type is a known value
func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// String returns the string representation
func (t TransactionType) String() string {
	return string(t)
}

// FinancialCategory groups transactions of one type (material purchase,
// bag sales, payroll, utilities).
type FinancialCategory struct {
	shared.BaseEntity
	Name            string
	TransactionType TransactionType
	Description     string
	IsActive        bool
}

// NewFinancialCategory creates an active category
func NewFinancialCategory(name string, transactionType TransactionType) (*FinancialCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 200 characters")
	}
	if !transactionType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Transaction type must be income or expense")
	}

	return &FinancialCategory{
		BaseEntity:      shared.NewBaseEntity(),
		Name:            name,
		TransactionType: transactionType,
		IsActive:        true,
	}, nil
}

// SetName renames the category
func (c *FinancialCategory) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 200 characters")
	}
	c.Name = name
	c.Touch()
	return nil
}

// SetDescription sets the free-form description
func (c *FinancialCategory) SetDescription(description string) error {
	if len(description) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}
	c.Description = description
	c.Touch()
	return nil
}

// Activate re-enables the category for new transactions
func (c *FinancialCategory) Activate() error {
	if c.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Category is already active")
	}
	c.IsActive = true
	c.Touch()
	return nil
}

// Deactivate retires the category
func (c *FinancialCategory) Deactivate() error {
	if !c.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Category is already inactive")
	}
	c.IsActive = false
	c.Touch()
	return nil
}
