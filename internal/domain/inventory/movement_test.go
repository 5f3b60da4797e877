package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventoryMovement(t *testing.T) {
	t.Run("derives total value from quantity and price", func(t *testing.T) {
		mv, err := NewInventoryMovement(1, 2, MovementIn, dec("12.5"), dec("40000"), time.Time{})
		require.NoError(t, err)

		assert.True(t, mv.TotalValue.Equal(dec("500000")))
		assert.Equal(t, int64(1), mv.RawMaterialID)
		assert.Equal(t, int64(2), mv.UserID)
		assert.False(t, mv.MovementDate.IsZero())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewInventoryMovement(1, 2, MovementOut, dec("0"), dec("100"), time.Time{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewInventoryMovement(1, 2, MovementOut, dec("-5"), dec("100"), time.Time{})
		assert.Error(t, err)
	})

	t.Run("accepts negative adjustment quantity", func(t *testing.T) {
		mv, err := NewInventoryMovement(1, 2, MovementAdjustment, dec("-5"), dec("100"), time.Time{})
		require.NoError(t, err)
		assert.True(t, mv.StockEffect().Equal(dec("-5")))
	})

	t.Run("rejects zero adjustment quantity", func(t *testing.T) {
		_, err := NewInventoryMovement(1, 2, MovementAdjustment, dec("0"), dec("100"), time.Time{})
		assert.Error(t, err)
	})

	t.Run("rejects unknown movement type", func(t *testing.T) {
		_, err := NewInventoryMovement(1, 2, MovementType("return"), dec("1"), dec("100"), time.Time{})
		assert.Error(t, err)
	})

	t.Run("rejects missing material or user", func(t *testing.T) {
		_, err := NewInventoryMovement(0, 2, MovementIn, dec("1"), dec("100"), time.Time{})
		assert.Error(t, err)
		_, err = NewInventoryMovement(1, 0, MovementIn, dec("1"), dec("100"), time.Time{})
		assert.Error(t, err)
	})

	t.Run("limits reference and notes length", func(t *testing.T) {
		mv, err := NewInventoryMovement(1, 2, MovementIn, dec("1"), dec("100"), time.Time{})
		require.NoError(t, err)

		long := make([]byte, 101)
		for i := range long {
			long[i] = 'x'
		}
		assert.Error(t, mv.SetReference(string(long)))
		assert.NoError(t, mv.SetReference("PO-2026-0012"))
		assert.NoError(t, mv.SetNotes("delivery from supplier"))
	})
}

func TestReplayStock(t *testing.T) {
	mk := func(mt MovementType, qty string) InventoryMovement {
		mv, err := NewInventoryMovement(1, 1, mt, dec(qty), dec("100"), time.Time{})
		require.NoError(t, err)
		return *mv
	}

	t.Run("in and out accumulate", func(t *testing.T) {
		stock := ReplayStock([]InventoryMovement{
			mk(MovementIn, "100"),
			mk(MovementOut, "30"),
			mk(MovementIn, "5.25"),
		})
		assert.True(t, stock.Equal(dec("75.25")))
	})

	t.Run("adjustment adds like an inflow", func(t *testing.T) {
		stock := ReplayStock([]InventoryMovement{
			mk(MovementIn, "100"),
			mk(MovementAdjustment, "80"),
			mk(MovementOut, "10"),
		})
		assert.True(t, stock.Equal(dec("170")))
	})

	t.Run("negative adjustment decreases the level", func(t *testing.T) {
		stock := ReplayStock([]InventoryMovement{
			mk(MovementIn, "100"),
			mk(MovementAdjustment, "-12.5"),
		})
		assert.True(t, stock.Equal(dec("87.5")))
	})

	t.Run("outflow may drive stock negative", func(t *testing.T) {
		stock := ReplayStock([]InventoryMovement{
			mk(MovementOut, "10"),
		})
		assert.True(t, stock.Equal(dec("-10")))
	})

	t.Run("empty ledger is zero", func(t *testing.T) {
		assert.True(t, ReplayStock(nil).IsZero())
	})
}
