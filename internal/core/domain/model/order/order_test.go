package order_test

import (
	"testing"
	"time"

	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/model/order"
	"mealorder/internal/core/domain/model/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func testLocation(t *testing.T) *provider.Location {
	t.Helper()
	loc, err := provider.NewLocation(mustID(t, 10), mustID(t, 1), "Main St Diner")
	require.NoError(t, err)
	return &loc
}

func testItem(t *testing.T, quantity int64, price float64) order.Item {
	t.Helper()
	menuItem, err := provider.NewMenuItem(mustID(t, 100), "Daily Special", price)
	require.NoError(t, err)
	item, err := order.NewItem(quantity, menuItem.Price(), menuItem)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	t.Run("created open with computed subtotal", func(t *testing.T) {
		placedAt := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
		items := []order.Item{testItem(t, 2, 5.50), testItem(t, 1, 3.25)}

		o, err := order.NewOrder(mustID(t, 7), placedAt, testLocation(t), items)

		require.NoError(t, err)
		assert.Equal(t, order.Open, o.Status())
		assert.Equal(t, placedAt, o.OrderDate())
		assert.InEpsilon(t, 2*5.50+3.25, o.SubTotal(), 1e-9)
		assert.True(t, o.ID().IsZero())
	})

	t.Run("zero order date defaults to now", func(t *testing.T) {
		before := time.Now()

		o, err := order.NewOrder(mustID(t, 7), time.Time{}, nil, nil)

		require.NoError(t, err)
		assert.False(t, o.OrderDate().Before(before))
	})

	t.Run("invalid user is rejected", func(t *testing.T) {
		var zero kernel.ID

		_, err := order.NewOrder(zero, time.Now(), nil, nil)

		require.Error(t, err)
	})

	t.Run("unconstructed item is rejected", func(t *testing.T) {
		_, err := order.NewOrder(mustID(t, 7), time.Now(), nil, []order.Item{{}})

		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("constructed order validates", func(t *testing.T) {
		o, err := order.NewOrder(mustID(t, 7), time.Now(), nil, nil)
		require.NoError(t, err)

		require.NoError(t, o.Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil fails", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderAssignID(t *testing.T) {
	o, err := order.NewOrder(mustID(t, 7), time.Now(), nil, nil)
	require.NoError(t, err)

	require.NoError(t, o.AssignID(mustID(t, 55)))
	assert.Equal(t, int64(55), o.ID().Int64())

	require.ErrorIs(t, o.AssignID(mustID(t, 56)), order.ErrOrderIDAlreadyAssigned)
}

func TestOrderLockKey(t *testing.T) {
	t.Run("derived from the numeric identity", func(t *testing.T) {
		o, err := order.NewOrder(mustID(t, 7), time.Now(), nil, nil)
		require.NoError(t, err)
		require.NoError(t, o.AssignID(mustID(t, 55)))

		assert.Equal(t, "order:55", o.LockKey())
	})

	t.Run("empty while unpersisted", func(t *testing.T) {
		o, err := order.NewOrder(mustID(t, 7), time.Now(), nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "", o.LockKey())
	})
}

func TestOrderLifecycle(t *testing.T) {
	t.Run("complete moves open to ordered", func(t *testing.T) {
		o, err := order.NewOrder(mustID(t, 7), time.Now(), nil, nil)
		require.NoError(t, err)

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Ordered, o.Status())

		require.Error(t, o.Complete())
	})

	t.Run("reopen returns the order to open", func(t *testing.T) {
		o, err := order.NewOrder(mustID(t, 7), time.Now(), nil, nil)
		require.NoError(t, err)
		require.NoError(t, o.Complete())

		require.NoError(t, o.Reopen())
		assert.Equal(t, order.Open, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		placedAt := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
		items := []order.Item{order.RestoreItem(mustID(t, 100), "Daily Special", 1, 4.75)}

		o, err := order.RestoreOrder(
			mustID(t, 55), mustID(t, 7), order.Ordered, placedAt, testLocation(t), items, 4.75)

		require.NoError(t, err)
		assert.Equal(t, order.Ordered, o.Status())
		assert.Equal(t, "order:55", o.LockKey())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(
			mustID(t, 55), mustID(t, 7), order.Unknown, time.Now(), nil, nil, 0)

		require.Error(t, err)
	})
}

func TestItemTotal(t *testing.T) {
	item := testItem(t, 3, 2.50)

	assert.InEpsilon(t, 7.50, item.Total(), 1e-9)
}
