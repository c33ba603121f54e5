// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors in totals arithmetic.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// The API speaks float64 on the wire; conversion to decimal happens at the
// domain boundary so totals are computed exactly.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// FormatAmount renders a Money value with two decimal places for documents.
func FormatAmount(m Money) string {
	return m.StringFixed(2)
}

// Percent returns pct/100 as an exact decimal factor.
func Percent(pct Money) Money {
	return pct.Div(decimal.NewFromInt(100))
}
