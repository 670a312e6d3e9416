package entities

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is an amount in currency minor units. VND has no minor unit, so one
// Money unit is one đồng.
type Money int64

const (
	MaxMoney Money = math.MaxInt64
	MinMoney Money = math.MinInt64
)

var (
	maxMoneyDecimal = decimal.NewFromInt(math.MaxInt64)
	minMoneyDecimal = decimal.NewFromInt(math.MinInt64)
)

// MoneyFromDecimal rounds half away from zero to whole minor units, clamping
// to the Money range.
func MoneyFromDecimal(d decimal.Decimal) Money {
	m, _ := MoneyFromDecimalChecked(d)
	return m
}

// MoneyFromDecimalChecked is MoneyFromDecimal reporting false when d had to be clamped.
func MoneyFromDecimalChecked(d decimal.Decimal) (Money, bool) {
	r := d.Round(0)
	switch {
	case r.GreaterThan(maxMoneyDecimal):
		return MaxMoney, false
	case r.LessThan(minMoneyDecimal):
		return MinMoney, false
	}
	return Money(r.IntPart()), true
}

// Times is m × q. On overflow it returns the bound in the product's direction
// and false.
func (m Money) Times(q int) (Money, bool) {
	if m == 0 || q == 0 {
		return 0, true
	}
	p := int64(m) * int64(q)
	if p/int64(q) != int64(m) || (q == -1 && m == MinMoney) {
		return saturated((m > 0) == (q > 0)), false
	}
	return Money(p), true
}

// Plus is m + o. On overflow it returns the bound in o's direction and false.
func (m Money) Plus(o Money) (Money, bool) {
	s := m + o
	if (o > 0 && s < m) || (o < 0 && s > m) {
		return saturated(o > 0), false
	}
	return s, true
}

func saturated(positive bool) Money {
	if positive {
		return MaxMoney
	}
	return MinMoney
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m))
}

func (m Money) String() string {
	return strconv.FormatInt(int64(m), 10)
}
