package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawDate identifies the month in which the saver wants the goal
// amount to be available.
type WithdrawDate struct {
	Year  int `yaml:"year" json:"year"`
	Month int `yaml:"month" json:"month"` // 1-12
}

func (w WithdrawDate) String() string {
	return fmt.Sprintf("%04d-%02d", w.Year, w.Month)
}

// Before reports whether the withdraw month is strictly before the month
// containing t.
func (w WithdrawDate) Before(t time.Time) bool {
	if w.Year != t.Year() {
		return w.Year < t.Year()
	}
	return w.Month < int(t.Month())
}

// PlanInput is the validated input set for a plan run.
//
// MaxDeposit is the monthly contribution ceiling in whole currency units.
// A negative value means the saver needs to withdraw up to that amount
// each month instead of contributing.
type PlanInput struct {
	Goal           decimal.Decimal `yaml:"goal" json:"goal"`
	WithdrawDate   WithdrawDate    `yaml:"withdraw_date" json:"withdrawDate"`
	InitialCapital decimal.Decimal `yaml:"initial_capital" json:"initialCapital"`
	MaxDeposit     int             `yaml:"max_deposit" json:"maxDeposit"`
}

// Validate checks the input constraints against the current time.
func (p *PlanInput) Validate(now time.Time) error {
	if !p.Goal.IsPositive() {
		return &PlanError{
			Operation: "validate_input",
			Message:   "goal must be positive",
		}
	}

	if p.WithdrawDate.Month < 1 || p.WithdrawDate.Month > 12 {
		return &PlanError{
			Operation: "validate_input",
			Message:   fmt.Sprintf("withdraw month must be between 1 and 12, got %d", p.WithdrawDate.Month),
		}
	}

	if p.WithdrawDate.Before(now) {
		return &PlanError{
			Operation: "validate_input",
			Message:   fmt.Sprintf("withdraw date %s is in the past", p.WithdrawDate),
		}
	}

	if decimal.NewFromInt(int64(p.MaxDeposit)).GreaterThan(p.Goal) {
		return &PlanError{
			Operation: "validate_input",
			Message:   "max deposit cannot exceed the goal",
		}
	}

	// A withdrawal ceiling must leave the starting capital recoverable.
	if p.MaxDeposit < 0 {
		if p.InitialCapital.Sub(decimal.NewFromInt(int64(p.MaxDeposit))).IsNegative() {
			return &PlanError{
				Operation: "validate_input",
				Message:   "monthly withdrawal is too large for the initial capital",
			}
		}
	}

	return nil
}

// Scenario is one (deposit, yield) combination and the capital it produces
// by the withdraw date. A value object: two scenarios with equal fields are
// the same scenario.
type Scenario struct {
	Deposit      int             `yaml:"deposit" json:"deposit"`
	YieldPct     int             `yaml:"yield_pct" json:"yieldPct"`
	FinalCapital decimal.Decimal `yaml:"final_capital" json:"finalCapital"`
}

// SameCombination reports whether two scenarios share the same
// (deposit, yield) pair.
func (s Scenario) SameCombination(o Scenario) bool {
	return s.Deposit == o.Deposit && s.YieldPct == o.YieldPct
}

// Overshoot returns how far the final capital lands past the goal.
func (s Scenario) Overshoot(goal decimal.Decimal) decimal.Decimal {
	return s.FinalCapital.Sub(goal)
}

// PlanResult is the full outcome of a plan run, ready for presentation.
// Scenarios is sorted ascending by deposit. Best is nil when no
// deposit/yield combination reaches the goal; that is a normal outcome,
// not an error.
type PlanResult struct {
	Input       PlanInput  `json:"input"`
	TotalMonths int        `json:"totalMonths"`
	Scenarios   []Scenario `json:"scenarios"`
	Best        *Scenario  `json:"best,omitempty"`
}

// HasBest reports whether a recommended scenario exists.
func (r *PlanResult) HasBest() bool {
	return r.Best != nil
}

// PlanError represents errors from plan validation and execution.
type PlanError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *PlanError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *PlanError) Unwrap() error {
	return e.Cause
}
