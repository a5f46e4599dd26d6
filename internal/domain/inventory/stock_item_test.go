package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailpos/backend/internal/domain/shared"
)

func TestStockItemDecrease(t *testing.T) {
	newItem := func(t *testing.T, qty int64) *StockItem {
		t.Helper()
		item, err := NewStockItem(uuid.New(), uuid.New(), uuid.New(), nil, decimal.NewFromInt(qty))
		require.NoError(t, err)
		return item
	}

	t.Run("decrease within stock", func(t *testing.T) {
		item := newItem(t, 10)
		require.NoError(t, item.Decrease(decimal.NewFromInt(3)))
		assert.True(t, item.Quantity.Equal(decimal.NewFromInt(7)))
	})

	t.Run("decrease to exactly zero", func(t *testing.T) {
		item := newItem(t, 5)
		require.NoError(t, item.Decrease(decimal.NewFromInt(5)))
		assert.True(t, item.Quantity.IsZero())
	})

	t.Run("decrease below zero fails", func(t *testing.T) {
		item := newItem(t, 2)
		err := item.Decrease(decimal.NewFromInt(3))
		require.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.True(t, item.Quantity.Equal(decimal.NewFromInt(2)), "quantity must be unchanged")
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		item := newItem(t, 2)
		assert.Error(t, item.Decrease(decimal.Zero))
		assert.Error(t, item.Decrease(decimal.NewFromInt(-1)))
	})
}

func TestStockItemCanFulfill(t *testing.T) {
	item, err := NewStockItem(uuid.New(), uuid.New(), uuid.New(), nil, decimal.NewFromInt(4))
	require.NoError(t, err)

	assert.True(t, item.CanFulfill(decimal.NewFromInt(4)))
	assert.True(t, item.CanFulfill(decimal.NewFromInt(1)))
	assert.False(t, item.CanFulfill(decimal.NewFromInt(5)))
}

func TestNewOutMovement(t *testing.T) {
	t.Run("balance derived from quantity", func(t *testing.T) {
		invoiceID := uuid.New()
		lineID := uuid.New()
		mv, err := NewOutMovement(uuid.New(), uuid.New(), uuid.New(), nil,
			decimal.NewFromInt(3), decimal.NewFromInt(10),
			SourceTypeInvoice, invoiceID, &lineID)
		require.NoError(t, err)

		assert.Equal(t, MovementTypeOut, mv.MovementType)
		assert.True(t, mv.BalanceBefore.Equal(decimal.NewFromInt(10)))
		assert.True(t, mv.BalanceAfter.Equal(decimal.NewFromInt(7)))
		assert.Equal(t, invoiceID, mv.SourceID)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		_, err := NewOutMovement(uuid.New(), uuid.New(), uuid.New(), nil,
			decimal.Zero, decimal.NewFromInt(10), SourceTypeInvoice, uuid.New(), nil)
		assert.Error(t, err)
	})

	t.Run("empty source rejected", func(t *testing.T) {
		_, err := NewOutMovement(uuid.New(), uuid.New(), uuid.New(), nil,
			decimal.NewFromInt(1), decimal.NewFromInt(10), SourceTypeInvoice, uuid.Nil, nil)
		assert.Error(t, err)
	})
}
