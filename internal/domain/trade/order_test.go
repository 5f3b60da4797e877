package trade

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

func int64p(v int64) *int64 { return &v }

func newPendingOrder(t *testing.T) *Order {
	o, err := NewOrder("ORD-20260830-0001", 5, time.Time{})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order dated today", func(t *testing.T) {
		o := newPendingOrder(t)
		assert.Equal(t, OrderStatusPending, o.Status)
		assert.True(t, o.TotalAmount.IsZero())
		assert.Equal(t, 0, o.OrderDate.Hour())
		assert.Nil(t, o.DueDate)
	})

	t.Run("fails without order number or customer", func(t *testing.T) {
		_, err := NewOrder("", 5, time.Time{})
		assert.Error(t, err)
		_, err = NewOrder("ORD-1", 0, time.Time{})
		assert.Error(t, err)
	})
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderStatusPending, OrderStatusInProgress, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusInProgress, OrderStatusCompleted, true},
		{OrderStatusInProgress, OrderStatusCancelled, true},
		{OrderStatusInProgress, OrderStatusDelivered, false},
		{OrderStatusCompleted, OrderStatusDelivered, true},
		{OrderStatusCompleted, OrderStatusCancelled, true},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusInProgress, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestNewOrderItem(t *testing.T) {
	t.Run("derives line total", func(t *testing.T) {
		item, err := NewOrderItem(1, int64p(3), nil, "Canvas Tote", dec("10"), dec("185000"))
		require.NoError(t, err)
		assert.True(t, item.TotalPrice.Equal(dec("1850000")))
	})

	t.Run("requires exactly one reference", func(t *testing.T) {
		_, err := NewOrderItem(1, nil, nil, "Tote", dec("1"), dec("1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one")

		_, err = NewOrderItem(1, int64p(3), int64p(7), "Tote", dec("1"), dec("1"))
		require.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewOrderItem(1, int64p(3), nil, "Tote", dec("0"), dec("1"))
		assert.Error(t, err)
	})
}

func TestOrder_ItemsAndTotal(t *testing.T) {
	t.Run("total is sum of line totals", func(t *testing.T) {
		o := newPendingOrder(t)
		_, err := o.AddItem(int64p(1), nil, "Canvas Tote", dec("10"), dec("185000"))
		require.NoError(t, err)
		_, err = o.AddItem(nil, int64p(2), "Leftover leather", dec("2.5"), dec("100000"))
		require.NoError(t, err)

		assert.True(t, o.TotalAmount.Equal(dec("2100000")))
	})

	t.Run("removing an item recomputes the total", func(t *testing.T) {
		o := newPendingOrder(t)
		_, err := o.AddItem(int64p(1), nil, "Tote", dec("10"), dec("185000"))
		require.NoError(t, err)
		_, err = o.AddItem(int64p(2), nil, "Backpack", dec("1"), dec("250000"))
		require.NoError(t, err)

		// IDs are assigned on save; set them by hand to remove by ID
		o.Items[0].ID, o.Items[1].ID = 11, 12

		require.NoError(t, o.RemoveItem(11))
		assert.True(t, o.TotalAmount.Equal(dec("250000")))
	})

	t.Run("removing unknown item fails", func(t *testing.T) {
		o := newPendingOrder(t)
		assert.Error(t, o.RemoveItem(99))
	})

	t.Run("items frozen after completion", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Start())
		require.NoError(t, o.Complete())

		_, err := o.AddItem(int64p(1), nil, "Tote", dec("1"), dec("1"))
		assert.Error(t, err)
		assert.Error(t, o.RemoveItem(1))
	})
}

func TestOrderItem_UpdatePricing(t *testing.T) {
	item, err := NewOrderItem(1, int64p(3), nil, "Tote", dec("10"), dec("185000"))
	require.NoError(t, err)

	require.NoError(t, item.UpdatePricing(dec("12"), dec("180000")))
	assert.True(t, item.TotalPrice.Equal(dec("2160000")))

	assert.Error(t, item.UpdatePricing(dec("0"), dec("1")))
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("pending to delivered stamps dates", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Start())
		require.NoError(t, o.Complete())
		require.NotNil(t, o.CompletionDate)
		require.NoError(t, o.Deliver())
		require.NotNil(t, o.DeliveryDate)
		assert.Equal(t, OrderStatusDelivered, o.Status)
	})

	t.Run("cannot deliver before completion", func(t *testing.T) {
		o := newPendingOrder(t)
		assert.Error(t, o.Deliver())
		require.NoError(t, o.Start())
		assert.Error(t, o.Deliver())
	})

	t.Run("cancel allowed until delivery", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Start())
		require.NoError(t, o.Complete())
		require.NoError(t, o.Cancel())
		assert.Equal(t, OrderStatusCancelled, o.Status)
	})

	t.Run("cannot cancel after delivery", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Start())
		require.NoError(t, o.Complete())
		require.NoError(t, o.Deliver())
		assert.Error(t, o.Cancel())
	})
}
