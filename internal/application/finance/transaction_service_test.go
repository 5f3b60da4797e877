package finance

import (
	"context"
	"testing"
	"time"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/finance"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCategoryRepository is a mock implementation of finance.FinancialCategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (*finance.FinancialCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.FinancialCategory), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.FinancialCategory, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.FinancialCategory), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *finance.FinancialCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransactionRepository is a mock implementation of finance.FinancialTransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id int64) (*finance.FinancialTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.FinancialTransaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.FinancialTransaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.FinancialTransaction), args.Error(1)
}

func (m *MockTransactionRepository) Save(ctx context.Context, transaction *finance.FinancialTransaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) FindByNumber(ctx context.Context, transactionNumber string) (*finance.FinancialTransaction, error) {
	args := m.Called(ctx, transactionNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.FinancialTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ExistsByNumber(ctx context.Context, transactionNumber string) (bool, error) {
	args := m.Called(ctx, transactionNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) NextSequence(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionRepository) Summarize(ctx context.Context, from, to *time.Time) (*finance.Summary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Summary), args.Error(1)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func testCategory(t *testing.T, transactionType finance.TransactionType) *finance.FinancialCategory {
	t.Helper()
	category, err := finance.NewFinancialCategory("Penjualan Tas", transactionType)
	require.NoError(t, err)
	category.ID = 4
	return category
}

func TestTransactionService_Create_TypeFollowsCategory(t *testing.T) {
	ctx := context.Background()
	transactionRepo := new(MockTransactionRepository)
	categoryRepo := new(MockCategoryRepository)

	categoryRepo.On("FindByID", ctx, int64(4)).Return(testCategory(t, finance.TransactionIncome), nil)
	transactionRepo.On("NextSequence", ctx, mock.MatchedBy(func(prefix string) bool {
		return len(prefix) == len("TRX-20060102-")
	})).Return(1, nil)
	transactionRepo.On("Save", ctx, mock.AnythingOfType("*finance.FinancialTransaction")).Return(nil)

	service := NewTransactionService(transactionRepo, categoryRepo)

	result, err := service.Create(ctx, 7, CreateTransactionRequest{
		CategoryID:  4,
		Amount:      dec("1250000"),
		Description: "Penjualan 25 tote bag",
	})

	require.NoError(t, err)
	assert.Equal(t, "income", result.TransactionType)
	assert.Equal(t, int64(7), result.UserID)
	assert.Contains(t, result.TransactionNumber, "TRX-")
	assert.True(t, result.Amount.Equal(dec("1250000")))
	transactionRepo.AssertExpectations(t)
}

func TestTransactionService_Create_RejectsInactiveCategory(t *testing.T) {
	ctx := context.Background()
	transactionRepo := new(MockTransactionRepository)
	categoryRepo := new(MockCategoryRepository)

	category := testCategory(t, finance.TransactionExpense)
	require.NoError(t, category.Deactivate())
	categoryRepo.On("FindByID", ctx, int64(4)).Return(category, nil)
	transactionRepo.On("NextSequence", ctx, mock.Anything).Return(1, nil)

	service := NewTransactionService(transactionRepo, categoryRepo)

	result, err := service.Create(ctx, 7, CreateTransactionRequest{
		CategoryID:  4,
		Amount:      dec("500000"),
		Description: "Beli kain kanvas",
	})

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestTransactionService_Create_RejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	transactionRepo := new(MockTransactionRepository)
	categoryRepo := new(MockCategoryRepository)

	categoryRepo.On("FindByID", ctx, int64(4)).Return(testCategory(t, finance.TransactionIncome), nil)
	transactionRepo.On("NextSequence", ctx, mock.Anything).Return(1, nil)

	service := NewTransactionService(transactionRepo, categoryRepo)

	result, err := service.Create(ctx, 7, CreateTransactionRequest{
		CategoryID:  4,
		Amount:      dec("0"),
		Description: "nol",
	})

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestTransactionService_Update_CategoryChangeRederivesType(t *testing.T) {
	ctx := context.Background()
	transactionRepo := new(MockTransactionRepository)
	categoryRepo := new(MockCategoryRepository)

	transaction, err := finance.NewFinancialTransaction(
		"TRX-20260101-0001", 7, 4, finance.TransactionIncome,
		dec("1250000"), "Penjualan 25 tote bag", shared.Today(),
	)
	require.NoError(t, err)
	transaction.ID = 31

	expenseCategory, err := finance.NewFinancialCategory("Pembelian Bahan", finance.TransactionExpense)
	require.NoError(t, err)
	expenseCategory.ID = 9

	transactionRepo.On("FindByID", ctx, int64(31)).Return(transaction, nil)
	categoryRepo.On("FindByID", ctx, int64(9)).Return(expenseCategory, nil)
	transactionRepo.On("Save", ctx, transaction).Return(nil)

	service := NewTransactionService(transactionRepo, categoryRepo)

	newCategoryID := int64(9)
	result, err := service.Update(ctx, 31, UpdateTransactionRequest{CategoryID: &newCategoryID})

	require.NoError(t, err)
	assert.Equal(t, int64(9), result.CategoryID)
	assert.Equal(t, "expense", result.TransactionType)
	// untouched fields keep their values
	assert.Equal(t, "Penjualan 25 tote bag", result.Description)
	assert.True(t, result.Amount.Equal(dec("1250000")))
}

func TestTransactionService_Summary(t *testing.T) {
	ctx := context.Background()
	transactionRepo := new(MockTransactionRepository)
	categoryRepo := new(MockCategoryRepository)

	transactionRepo.On("Summarize", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(&finance.Summary{
		TotalIncome:  dec("5000000"),
		TotalExpense: dec("3200000"),
		Net:          dec("1800000"),
	}, nil)

	service := NewTransactionService(transactionRepo, categoryRepo)

	result, err := service.Summary(ctx, SummaryRequest{})

	require.NoError(t, err)
	assert.True(t, result.TotalIncome.Equal(dec("5000000")))
	assert.True(t, result.TotalExpense.Equal(dec("3200000")))
	assert.True(t, result.Net.Equal(dec("1800000")))
}
