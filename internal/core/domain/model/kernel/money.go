package kernel

import (
	"errors"

	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
	"github.com/lax56237/Daily-Drop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned by Validate for a Money built as a struct literal.
var ErrMoneyIsNotConstructed = errors.New("money must be created via NewMoney, MoneyFromString or ZeroMoney")

// Money is a non-negative amount in rupees with paise precision.
// Arithmetic is exact; totals are always recomputed from line items rather than accumulated.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates Money from a decimal amount rounded to two places.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return Money{
		amount: amount.Round(2),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses amounts such as "25", "25.5" or "25.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// Sub returns m - other, floored at zero.
func (m Money) Sub(other Money) Money {
	amount := m.amount.Sub(other.amount)
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}
}

// Times returns m multiplied by a non-negative quantity.
func (m Money) Times(quantity int) Money {
	if quantity < 0 {
		quantity = 0
	}
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// DividedBy splits m into count equal parts rounded to paise. A non-positive count yields zero.
func (m Money) DividedBy(count int) Money {
	if count <= 0 {
		return ZeroMoney()
	}
	return Money{
		amount: m.amount.DivRound(decimal.NewFromInt(int64(count)), 2),
		guard:  guard.NewConstructorGuard(),
	}
}

// Decimal returns the amount for persistence and wire encoding.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares amounts numerically, so 25 equals 25.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate returns ErrMoneyIsNotConstructed for a zero-value Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
