package finance

import (
	"strings"
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// FinancialTransaction records a single cash movement. Its type must
// agree with the type of its category.
type FinancialTransaction struct {
	shared.BaseEntity
	TransactionNumber string
	UserID            int64
	CategoryID        int64
	TransactionType   TransactionType
	Amount            decimal.Decimal
	Description       string
	ReferenceNumber   string
	TransactionDate   time.Time
	PaymentMethod     string
}

// NewFinancialTransaction creates a transaction dated today unless a
// date is given.
func NewFinancialTransaction(transactionNumber string, userID, categoryID int64, transactionType TransactionType, amount decimal.Decimal, description string, transactionDate time.Time) (*FinancialTransaction, error) {
	transactionNumber = strings.TrimSpace(transactionNumber)
	if transactionNumber == "" {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_NUMBER", "Transaction number cannot be empty")
	}
	if len(transactionNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_NUMBER", "Transaction number cannot exceed 50 characters")
	}
	if userID == 0 {
		return nil, shared.NewDomainError("INVALID_USER", "Transaction must record the acting user")
	}
	if categoryID == 0 {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Transaction must reference a category")
	}
	if !transactionType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Transaction type must be income or expense")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be positive")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Transaction description cannot be empty")
	}
	if len(description) > 1000 {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 1000 characters")
	}
	if transactionDate.IsZero() {
		transactionDate = shared.Today()
	}

	return &FinancialTransaction{
		BaseEntity:        shared.NewBaseEntity(),
		TransactionNumber: transactionNumber,
		UserID:            userID,
		CategoryID:        categoryID,
		TransactionType:   transactionType,
		Amount:            amount,
		Description:       description,
		TransactionDate:   shared.DateOnly(transactionDate),
	}, nil
}

// ValidateCategory checks that the transaction can be filed under the
// given category: the category must be active and of the same type.
func (t *FinancialTransaction) ValidateCategory(category *FinancialCategory) error {
	if category == nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Transaction must reference a category")
	}
	if !category.IsActive {
		return shared.NewDomainError("INACTIVE_CATEGORY", "Cannot file a transaction under an inactive category")
	}
	if category.TransactionType != t.TransactionType {
		return shared.NewDomainError("TYPE_MISMATCH", "Transaction type does not match category type")
	}
	return nil
}

// SetAmount changes the amount
func (t *FinancialTransaction) SetAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be positive")
	}
	t.Amount = amount
	t.Touch()
	return nil
}

// SetDescription changes the description
func (t *FinancialTransaction) SetDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Transaction description cannot be empty")
	}
	if len(description) > 1000 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 1000 characters")
	}
	t.Description = description
	t.Touch()
	return nil
}

// SetReference attaches an external document reference
func (t *FinancialTransaction) SetReference(reference string) error {
	if len(reference) > 100 {
		return shared.NewDomainError("INVALID_REFERENCE", "Reference number cannot exceed 100 characters")
	}
	t.ReferenceNumber = reference
	t.Touch()
	return nil
}

// SetPaymentMethod records how the money moved (cash, transfer, QRIS)
func (t *FinancialTransaction) SetPaymentMethod(method string) error {
	if len(method) > 100 {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method cannot exceed 100 characters")
	}
	t.PaymentMethod = strings.TrimSpace(method)
	t.Touch()
	return nil
}

// SetTransactionDate changes the effective date
func (t *FinancialTransaction) SetTransactionDate(date time.Time) error {
	if date.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Transaction date cannot be empty")
	}
	t.TransactionDate = shared.DateOnly(date)
	t.Touch()
	return nil
}

// SignedAmount returns the amount with expense negated, for summing
func (t *FinancialTransaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == TransactionExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
