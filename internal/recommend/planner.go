package recommend

import (
	"context"
	"time"

	"github.com/rgehrsitz/goalplan/internal/calculation"
	"github.com/rgehrsitz/goalplan/internal/domain"
)

// Planner composes the time horizon, the scenario search and the
// selection step into a single plan run.
type Planner struct {
	Engine     *calculation.PlanEngine
	Tolerances Tolerances
}

// NewPlanner creates a planner with a fresh engine and default tolerances.
func NewPlanner() *Planner {
	return &Planner{
		Engine:     calculation.NewPlanEngine(),
		Tolerances: DefaultTolerances(),
	}
}

// Run executes a full plan for a validated input against the given clock.
func (p *Planner) Run(ctx context.Context, input *domain.PlanInput, now time.Time) (*domain.PlanResult, error) {
	totalMonths := calculation.MonthsBetween(now, input.WithdrawDate)

	set, err := p.Engine.Search(ctx, input, totalMonths)
	if err != nil {
		return nil, &domain.PlanError{
			Operation: "run_plan",
			Message:   "scenario search failed",
			Cause:     err,
		}
	}

	scenarios, best := Select(set, input.Goal, input.MaxDeposit, p.Tolerances)

	return &domain.PlanResult{
		Input:       *input,
		TotalMonths: totalMonths,
		Scenarios:   scenarios,
		Best:        best,
	}, nil
}
