package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlannedOpname(t *testing.T) *StockOpname {
	so, err := NewStockOpname("SO-20260830-0001", "Monthly count", 1, time.Now())
	require.NoError(t, err)
	return so
}

func TestNewStockOpname(t *testing.T) {
	t.Run("creates planned opname", func(t *testing.T) {
		so := newPlannedOpname(t)
		assert.Equal(t, OpnameStatusPlanned, so.Status)
		assert.Nil(t, so.StartedAt)
		assert.Nil(t, so.CompletedAt)
		assert.Empty(t, so.Items)
		assert.Equal(t, 0, so.PlannedDate.Hour(), "planned date is date-only")
	})

	t.Run("fails without number or title", func(t *testing.T) {
		_, err := NewStockOpname("", "Title", 1, time.Now())
		assert.Error(t, err)
		_, err = NewStockOpname("SO-1", "", 1, time.Now())
		assert.Error(t, err)
	})

	t.Run("fails without user", func(t *testing.T) {
		_, err := NewStockOpname("SO-1", "Title", 0, time.Now())
		assert.Error(t, err)
	})
}

func TestStockOpnameStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to StockOpnameStatus
		ok       bool
	}{
		{OpnameStatusPlanned, OpnameStatusInProgress, true},
		{OpnameStatusPlanned, OpnameStatusCancelled, true},
		{OpnameStatusPlanned, OpnameStatusCompleted, false},
		{OpnameStatusInProgress, OpnameStatusCompleted, true},
		{OpnameStatusInProgress, OpnameStatusCancelled, true},
		{OpnameStatusInProgress, OpnameStatusPlanned, false},
		{OpnameStatusCompleted, OpnameStatusCancelled, false},
		{OpnameStatusCancelled, OpnameStatusInProgress, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStockOpname_Lifecycle(t *testing.T) {
	t.Run("start stamps started_at", func(t *testing.T) {
		so := newPlannedOpname(t)
		require.NoError(t, so.Start())
		assert.Equal(t, OpnameStatusInProgress, so.Status)
		require.NotNil(t, so.StartedAt)
	})

	t.Run("complete requires all items counted", func(t *testing.T) {
		so := newPlannedOpname(t)
		_, err := so.AddItem(10, dec("50"))
		require.NoError(t, err)
		require.NoError(t, so.Start())

		err = so.Complete()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be counted")

		require.NoError(t, so.Items[0].RecordCount(dec("48"), ""))
		require.NoError(t, so.Complete())
		assert.Equal(t, OpnameStatusCompleted, so.Status)
		assert.NotNil(t, so.CompletedAt)
	})

	t.Run("cannot complete from planned", func(t *testing.T) {
		so := newPlannedOpname(t)
		assert.Error(t, so.Complete())
	})

	t.Run("cancel from planned and in progress", func(t *testing.T) {
		so := newPlannedOpname(t)
		require.NoError(t, so.Cancel())

		so2 := newPlannedOpname(t)
		require.NoError(t, so2.Start())
		require.NoError(t, so2.Cancel())

		assert.Error(t, so2.Cancel(), "cancelled is terminal")
	})
}

func TestStockOpname_AddItem(t *testing.T) {
	t.Run("snapshots system stock", func(t *testing.T) {
		so := newPlannedOpname(t)
		item, err := so.AddItem(7, dec("120.50"))
		require.NoError(t, err)
		assert.True(t, item.SystemStock.Equal(dec("120.50")))
		assert.False(t, item.IsCounted())
	})

	t.Run("rejects duplicate material", func(t *testing.T) {
		so := newPlannedOpname(t)
		_, err := so.AddItem(7, dec("1"))
		require.NoError(t, err)
		_, err = so.AddItem(7, dec("2"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already part")
	})

	t.Run("rejects items after completion", func(t *testing.T) {
		so := newPlannedOpname(t)
		require.NoError(t, so.Start())
		require.NoError(t, so.Complete())
		_, err := so.AddItem(7, dec("1"))
		assert.Error(t, err)
	})
}

func TestStockOpnameItem_RecordCount(t *testing.T) {
	t.Run("difference is physical minus system", func(t *testing.T) {
		item, err := NewStockOpnameItem(1, 7, dec("100"))
		require.NoError(t, err)

		require.NoError(t, item.RecordCount(dec("94.5"), "water damage on two rolls"))
		require.NotNil(t, item.Difference)
		assert.True(t, item.Difference.Equal(dec("-5.5")))
		assert.True(t, item.IsCounted())
		assert.True(t, item.HasDifference())
		assert.NotNil(t, item.CountedAt)
	})

	t.Run("surplus comes out positive", func(t *testing.T) {
		item, err := NewStockOpnameItem(1, 7, dec("10"))
		require.NoError(t, err)
		require.NoError(t, item.RecordCount(dec("12"), ""))
		assert.True(t, item.Difference.Equal(dec("2")))
	})

	t.Run("exact count has no difference", func(t *testing.T) {
		item, err := NewStockOpnameItem(1, 7, dec("10"))
		require.NoError(t, err)
		require.NoError(t, item.RecordCount(dec("10"), ""))
		assert.False(t, item.HasDifference())
	})

	t.Run("rejects negative physical stock", func(t *testing.T) {
		item, err := NewStockOpnameItem(1, 7, dec("10"))
		require.NoError(t, err)
		assert.Error(t, item.RecordCount(dec("-1"), ""))
	})
}

func TestStockOpname_Counters(t *testing.T) {
	so := newPlannedOpname(t)
	_, err := so.AddItem(1, dec("10"))
	require.NoError(t, err)
	_, err = so.AddItem(2, dec("20"))
	require.NoError(t, err)
	_, err = so.AddItem(3, dec("30"))
	require.NoError(t, err)

	require.NoError(t, so.Items[0].RecordCount(dec("10"), ""))
	require.NoError(t, so.Items[1].RecordCount(dec("18"), ""))

	assert.Equal(t, 2, so.CountedItems())
	assert.Equal(t, 1, so.DifferenceItems())
}
