package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

func validInput() PlanInput {
	return PlanInput{
		Goal:           decimal.NewFromInt(120000),
		WithdrawDate:   WithdrawDate{Year: 2030, Month: 6},
		InitialCapital: decimal.NewFromInt(10000),
		MaxDeposit:     500,
	}
}

func TestPlanInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*PlanInput)
		wantErr bool
	}{
		{
			name:    "valid input",
			modify:  func(p *PlanInput) {},
			wantErr: false,
		},
		{
			name:    "zero goal",
			modify:  func(p *PlanInput) { p.Goal = decimal.Zero },
			wantErr: true,
		},
		{
			name:    "negative goal",
			modify:  func(p *PlanInput) { p.Goal = decimal.NewFromInt(-5) },
			wantErr: true,
		},
		{
			name:    "month zero",
			modify:  func(p *PlanInput) { p.WithdrawDate.Month = 0 },
			wantErr: true,
		},
		{
			name:    "month thirteen",
			modify:  func(p *PlanInput) { p.WithdrawDate.Month = 13 },
			wantErr: true,
		},
		{
			name:    "withdraw date last month",
			modify:  func(p *PlanInput) { p.WithdrawDate = WithdrawDate{Year: 2026, Month: 7} },
			wantErr: true,
		},
		{
			name:    "withdraw date current month is allowed",
			modify:  func(p *PlanInput) { p.WithdrawDate = WithdrawDate{Year: 2026, Month: 8} },
			wantErr: false,
		},
		{
			name:    "max deposit above goal",
			modify:  func(p *PlanInput) { p.Goal = decimal.NewFromInt(400) },
			wantErr: true,
		},
		{
			name: "withdrawal too large for negative capital",
			modify: func(p *PlanInput) {
				p.InitialCapital = decimal.NewFromInt(-100)
				p.MaxDeposit = -50
			},
			wantErr: true,
		},
		{
			name: "withdrawal fine with positive capital",
			modify: func(p *PlanInput) {
				p.InitialCapital = decimal.NewFromInt(100000)
				p.MaxDeposit = -50
			},
			wantErr: false,
		},
		{
			name:    "negative initial capital alone is allowed",
			modify:  func(p *PlanInput) { p.InitialCapital = decimal.NewFromInt(-5000) },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.modify(&input)

			err := input.Validate(testNow)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestWithdrawDate_Before(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		date WithdrawDate
		want bool
	}{
		{WithdrawDate{Year: 2025, Month: 12}, true},
		{WithdrawDate{Year: 2026, Month: 7}, true},
		{WithdrawDate{Year: 2026, Month: 8}, false},
		{WithdrawDate{Year: 2026, Month: 9}, false},
		{WithdrawDate{Year: 2027, Month: 1}, false},
	}

	for _, tc := range cases {
		if got := tc.date.Before(now); got != tc.want {
			t.Errorf("%s.Before(%v) = %v, want %v", tc.date, now, got, tc.want)
		}
	}
}

func TestWithdrawDate_String(t *testing.T) {
	got := WithdrawDate{Year: 2030, Month: 6}.String()
	if got != "2030-06" {
		t.Errorf("expected 2030-06, got %s", got)
	}
}

func TestScenario_SameCombination(t *testing.T) {
	a := Scenario{Deposit: 100, YieldPct: 3, FinalCapital: decimal.NewFromInt(1)}
	b := Scenario{Deposit: 100, YieldPct: 3, FinalCapital: decimal.NewFromInt(2)}
	c := Scenario{Deposit: 100, YieldPct: 4}

	if !a.SameCombination(b) {
		t.Error("same (deposit, yield) should match regardless of final capital")
	}
	if a.SameCombination(c) {
		t.Error("different yield should not match")
	}
}

func TestScenario_Overshoot(t *testing.T) {
	s := Scenario{FinalCapital: decimal.NewFromInt(1040)}
	got := s.Overshoot(decimal.NewFromInt(1000))

	if !got.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected overshoot 40, got %s", got)
	}
}

func TestPlanError_Unwrap(t *testing.T) {
	cause := &PlanError{Operation: "inner", Message: "boom"}
	err := &PlanError{Operation: "outer", Message: "wrapped", Cause: cause}

	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
	want := "outer: wrapped: inner: boom"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
