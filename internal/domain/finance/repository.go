package finance

import (
	"context"
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// FinancialCategoryRepository defines persistence operations for categories
type FinancialCategoryRepository interface {
	shared.Repository[FinancialCategory]
}

// Summary aggregates cash flow over a period
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
}

// FinancialTransactionRepository defines persistence operations for transactions
type FinancialTransactionRepository interface {
	shared.Repository[FinancialTransaction]
	FindByNumber(ctx context.Context, transactionNumber string) (*FinancialTransaction, error)
	ExistsByNumber(ctx context.Context, transactionNumber string) (bool, error)
	NextSequence(ctx context.Context, prefix string) (int, error)
	Summarize(ctx context.Context, from, to *time.Time) (*Summary, error)
}
