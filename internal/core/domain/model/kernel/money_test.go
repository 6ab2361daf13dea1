package kernel_test

import (
	"testing"

	"swiftdrop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse a decimal amount", func(t *testing.T) {
		m, err := kernel.MoneyFromString("45.00")

		require.NoError(t, err)
		assert.Equal(t, "45.00", m.String())
	})

	t.Run("should round to two digits", func(t *testing.T) {
		m, err := kernel.MoneyFromString("10.005")

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("should fail on malformed input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten rand")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is invalid: money")
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add without floating point drift", func(t *testing.T) {
		tenth := kernel.MoneyFromFloat(0.10)

		sum := kernel.ZeroMoney()
		for i := 0; i < 10; i++ {
			sum = sum.Add(tenth)
		}

		assert.True(t, sum.IsEqual(kernel.MoneyFromFloat(1.00)))
		assert.Equal(t, "1.00", sum.String())
	})

	t.Run("should multiply by quantity", func(t *testing.T) {
		unit := kernel.MoneyFromFloat(55.00)

		assert.Equal(t, "165.00", unit.MulInt(3).String())
	})

	t.Run("addition is commutative", func(t *testing.T) {
		a := kernel.MoneyFromFloat(45.00)
		b := kernel.MoneyFromFloat(10.00)

		assert.True(t, a.Add(b).IsEqual(b.Add(a)))
	})
}

func TestMoney_ZeroValue(t *testing.T) {
	t.Run("zero value is a valid zero amount", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.False(t, m.IsNegative())
		assert.Equal(t, "0.00", m.String())
	})
}

func TestMoney_Negative(t *testing.T) {
	t.Run("should report negative amounts", func(t *testing.T) {
		m := kernel.NewMoney(decimal.NewFromInt(-5))

		assert.True(t, m.IsNegative())
		assert.Equal(t, "-5.00", m.String())
	})
}
