package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewFinancialCategory(t *testing.T) {
	t.Run("creates active category", func(t *testing.T) {
		c, err := NewFinancialCategory("Bag Sales", TransactionIncome)
		require.NoError(t, err)
		assert.Equal(t, "Bag Sales", c.Name)
		assert.Equal(t, TransactionIncome, c.TransactionType)
		assert.True(t, c.IsActive)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewFinancialCategory("Misc", TransactionType("transfer"))
		require.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewFinancialCategory("  ", TransactionExpense)
		require.Error(t, err)
	})
}

func TestNewFinancialTransaction(t *testing.T) {
	t.Run("creates transaction dated today", func(t *testing.T) {
		tx, err := NewFinancialTransaction("TRX-20260830-0001", 1, 2, TransactionExpense, dec("1250000"), "Leather purchase", time.Time{})
		require.NoError(t, err)
		assert.Equal(t, TransactionExpense, tx.TransactionType)
		assert.True(t, tx.Amount.Equal(dec("1250000")))
		assert.Equal(t, 0, tx.TransactionDate.Hour())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewFinancialTransaction("TRX-1", 1, 2, TransactionIncome, dec("0"), "x", time.Time{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := NewFinancialTransaction("TRX-1", 1, 2, TransactionIncome, dec("1"), "  ", time.Time{})
		require.Error(t, err)
	})

	t.Run("rejects missing user or category", func(t *testing.T) {
		_, err := NewFinancialTransaction("TRX-1", 0, 2, TransactionIncome, dec("1"), "x", time.Time{})
		assert.Error(t, err)
		_, err = NewFinancialTransaction("TRX-1", 1, 0, TransactionIncome, dec("1"), "x", time.Time{})
		assert.Error(t, err)
	})
}

func TestFinancialTransaction_ValidateCategory(t *testing.T) {
	newTx := func(t *testing.T, txType TransactionType) *FinancialTransaction {
		tx, err := NewFinancialTransaction("TRX-1", 1, 2, txType, dec("100"), "x", time.Time{})
		require.NoError(t, err)
		return tx
	}

	t.Run("accepts matching active category", func(t *testing.T) {
		cat, err := NewFinancialCategory("Payroll", TransactionExpense)
		require.NoError(t, err)
		assert.NoError(t, newTx(t, TransactionExpense).ValidateCategory(cat))
	})

	t.Run("rejects type mismatch", func(t *testing.T) {
		cat, err := NewFinancialCategory("Bag Sales", TransactionIncome)
		require.NoError(t, err)
		err = newTx(t, TransactionExpense).ValidateCategory(cat)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
	})

	t.Run("rejects inactive category", func(t *testing.T) {
		cat, err := NewFinancialCategory("Old Sales", TransactionIncome)
		require.NoError(t, err)
		require.NoError(t, cat.Deactivate())
		assert.Error(t, newTx(t, TransactionIncome).ValidateCategory(cat))
	})

	t.Run("rejects nil category", func(t *testing.T) {
		assert.Error(t, newTx(t, TransactionIncome).ValidateCategory(nil))
	})
}

func TestFinancialTransaction_SignedAmount(t *testing.T) {
	income, err := NewFinancialTransaction("TRX-1", 1, 2, TransactionIncome, dec("500"), "sale", time.Time{})
	require.NoError(t, err)
	assert.True(t, income.SignedAmount().Equal(dec("500")))

	expense, err := NewFinancialTransaction("TRX-2", 1, 2, TransactionExpense, dec("300"), "purchase", time.Time{})
	require.NoError(t, err)
	assert.True(t, expense.SignedAmount().Equal(dec("-300")))
}
