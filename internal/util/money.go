package util

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseAmountCent converts a decimal dollar string ("12.40") to cents.
// Rejects more than two decimal places rather than silently rounding.
func ParseAmountCent(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount: %w", err)
	}
	cents := d.Mul(hundred)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %s has sub-cent precision", s)
	}
	return cents.IntPart(), nil
}

// FormatCent renders cents as a dollar string with two decimals.
func FormatCent(cent int64) string {
	return decimal.NewFromInt(cent).Div(hundred).StringFixed(2)
}
