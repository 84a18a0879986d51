package calculation

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// Simulate applies months rounds of flat percentage growth plus a fixed
// monthly deposit to the initial capital and returns the final balance.
//
// Each round computes: current = current * (1 + yieldPct/100) + deposit.
// The growth factor (100+yieldPct)/100 is exact in decimal arithmetic, so
// repeated compounding does not accumulate rounding error. Both initial
// and deposit may be negative. Pure function.
func Simulate(initial decimal.Decimal, yieldPct int, deposit int, months int) decimal.Decimal {
	factor := decimal.NewFromInt(int64(100 + yieldPct)).Div(oneHundred)
	monthly := decimal.NewFromInt(int64(deposit))

	current := initial
	for i := 0; i < months; i++ {
		current = current.Mul(factor).Add(monthly)
	}
	return current
}
