package pricing

import (
	"math"

	"styledecor/internal/pkg/errs"
)

var ErrNegativeAmount = errs.New("amount cannot be negative")

// Money is an amount in cents. All pricing arithmetic stays in integers.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromAmount converts a decimal amount (e.g. 49.99) to cents,
// rounding half away from zero.
func NewMoneyFromAmount(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) LessOrEqual(other Money) bool {
	return m.cents <= other.cents
}

type AddOn struct {
	Name  string
	Price Money
}
