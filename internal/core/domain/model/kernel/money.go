package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"swiftdrop/internal/pkg/errs"
)

// Money is a value object representing a monetary amount with fixed two-digit
// precision. It wraps decimal arithmetic so that repeated additions across
// cart lines and fee components never accumulate the rounding drift binary
// floating point would introduce.
//
// Unlike most value objects in the domain, the zero value of Money is valid
// and represents an amount of 0.00. Money is immutable: every operation
// returns a new value.
//
// Example usage:
//
//	base, _ := kernel.MoneyFromString("45.00")
//	variation, _ := kernel.MoneyFromString("10.00")
//	unit := base.Add(variation)
//	fmt.Println(unit.String()) // "55.00"
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount, rounding to two digits.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(2)}
}

// MoneyFromString parses a Money from its decimal string representation,
// for example "45.00". Returns an error for malformed input.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%q is not a decimal amount: %w", s, err))
	}
	return NewMoney(amount), nil
}

// MoneyFromFloat creates a Money from a float64 amount, rounding to two
// digits. Intended for configuration values and test fixtures; wire and
// persistence formats should prefer MoneyFromString.
func MoneyFromFloat(v float64) Money {
	return NewMoney(decimal.NewFromFloat(v))
}

// ZeroMoney returns an amount of 0.00.
func ZeroMoney() Money {
	return Money{}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with exactly two decimal places,
// for example "85.00". Implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
