package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromInt(100), USD)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
		assert.Equal(t, USD, m.Currency())
	})

	t.Run("rejects empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		assert.Error(t, err)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyUSDFromFloat(100.50)
	b := NewMoneyUSDFromFloat(49.50)

	t.Run("add", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromInt(150)))
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.True(t, diff.Amount().Equal(decimal.NewFromInt(51)))
	})

	t.Run("mismatched currencies fail", func(t *testing.T) {
		eur := Zero(EUR)
		_, err := a.Add(eur)
		assert.Error(t, err)
		_, err = a.Subtract(eur)
		assert.Error(t, err)
	})

	t.Run("multiply", func(t *testing.T) {
		m := NewMoneyUSD(decimal.NewFromInt(100)).Multiply(decimal.NewFromInt(3))
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(300)))
	})

	t.Run("percentage", func(t *testing.T) {
		// 10% of 300 = 30, the quick-sale tax path
		tax := NewMoneyUSD(decimal.NewFromInt(300)).CalculatePercentage(decimal.NewFromInt(10))
		assert.True(t, tax.Amount().Equal(decimal.NewFromInt(30)))
	})
}

func TestMoneyComparisons(t *testing.T) {
	a := NewMoneyUSD(decimal.NewFromInt(100))
	b := NewMoneyUSD(decimal.NewFromInt(200))

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	gte, err := b.GreaterThanOrEqual(a)
	require.NoError(t, err)
	assert.True(t, gte)

	assert.True(t, a.Equals(NewMoneyUSD(decimal.NewFromInt(100))))
	assert.False(t, a.Equals(b))
}

func TestMoneyJSON(t *testing.T) {
	m := NewMoneyUSDFromFloat(42.50)
	data, err := json.Marshal(m)
	require.NoError(t, err)

	var parsed Money
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, m.Equals(parsed))
}

func TestMoneyScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("123.45"))
	assert.Equal(t, DefaultCurrency, m.Currency())
	assert.Equal(t, "123.45", m.Amount().String())

	// Value round-trips what Scan read
	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "123.45", v)

	require.NoError(t, m.Scan(nil))
	assert.True(t, m.IsZero())
}
