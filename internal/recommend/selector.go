package recommend

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/goalplan/internal/domain"
)

// Tolerances bound the goal-proximity band used to keep only scenarios
// that land close to the goal.
type Tolerances struct {
	Up   decimal.Decimal
	Down decimal.Decimal
}

// DefaultTolerances returns the fixed band of 85% to 105% of the goal.
func DefaultTolerances() Tolerances {
	return Tolerances{
		Up:   decimal.NewFromFloat(1.05),
		Down: decimal.NewFromFloat(0.85),
	}
}

// Less reports whether a is strictly preferable to b: lower yield first,
// then smaller overshoot past the goal. An exact tie is not "less", so a
// left-to-right reduction keeps the earliest of equal scenarios.
func Less(a, b domain.Scenario, goal decimal.Decimal) bool {
	if a.YieldPct != b.YieldPct {
		return a.YieldPct < b.YieldPct
	}
	return a.Overshoot(goal).LessThan(b.Overshoot(goal))
}

// Select filters the scenario set to the tolerance band, forces the
// boundary deposits (0 and maxDeposit) back in when the full set has
// them, picks the best scenario, and orders the list ascending by deposit
// for display. The best scenario is identified by its (deposit, yield)
// pair, independent of the display order.
//
// An empty or fully filtered-out set yields an empty list and a nil best.
func Select(set []domain.Scenario, goal decimal.Decimal, maxDeposit int, tol Tolerances) ([]domain.Scenario, *domain.Scenario) {
	if len(set) == 0 {
		return nil, nil
	}

	lower := tol.Down.Mul(goal)
	upper := tol.Up.Mul(goal)

	filtered := make([]domain.Scenario, 0, len(set))
	for _, s := range set {
		if s.FinalCapital.GreaterThanOrEqual(lower) && s.FinalCapital.LessThanOrEqual(upper) {
			filtered = append(filtered, s)
		}
	}

	// Boundary scenarios are always shown, even outside the band.
	for _, s := range set {
		if s.Deposit == 0 || s.Deposit == maxDeposit {
			if !containsCombination(filtered, s) {
				filtered = append(filtered, s)
			}
		}
	}

	if len(filtered) == 0 {
		return nil, nil
	}

	best := filtered[0]
	for _, s := range filtered[1:] {
		if Less(s, best, goal) {
			best = s
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Deposit < filtered[j].Deposit
	})

	return filtered, &best
}

func containsCombination(list []domain.Scenario, s domain.Scenario) bool {
	for _, have := range list {
		if have.SameCombination(s) {
			return true
		}
	}
	return false
}
