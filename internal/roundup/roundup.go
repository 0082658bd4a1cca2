// Package roundup implements the round-up savings core: computing the
// micro-saving produced by a transaction and assigning it to an
// investment bucket based on the user's risk preference.
package roundup

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// Compute returns the round-up for a positive transaction amount: the
// difference between the amount and the next whole dollar, rounded to
// cents. Whole-dollar amounts round up by nothing.
func Compute(amount decimal.Decimal) decimal.Decimal {
	fractional := amount.Sub(amount.Floor())
	if !fractional.IsPositive() {
		return decimal.Zero
	}
	return one.Sub(fractional).Round(2)
}

// ComputeCent is Compute over integer cents, used by the persistence
// path where amounts are stored as cents.
func ComputeCent(amountCent int64) int64 {
	fractional := amountCent % 100
	if fractional <= 0 {
		return 0
	}
	return 100 - fractional
}
