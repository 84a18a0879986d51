package calculation

import (
	"context"

	"github.com/rgehrsitz/goalplan/internal/domain"
)

// MaxYieldPct bounds the yield scan: monthly growth rates above 100% are
// not considered plannable.
const MaxYieldPct = 100

// PlanEngine runs the exhaustive (deposit, yield) scenario search.
type PlanEngine struct {
	Logger Logger
	Debug  bool // Enable debug output for per-deposit search results
}

// NewPlanEngine creates a new plan engine with a no-op logger.
func NewPlanEngine() *PlanEngine {
	return &PlanEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger; nil installs the no-op logger.
func (e *PlanEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// Search explores every whole deposit in the allowed range and, for each,
// finds the smallest whole yield percentage in [0, MaxYieldPct] whose
// final capital after totalMonths reaches the goal. Deposits that cannot
// reach the goal at any yield contribute no scenario and are omitted
// silently. An empty result is a normal outcome.
//
// When MaxDeposit is negative the searched range is [MaxDeposit, 0]: the
// ceiling is read as a maximum monthly withdrawal.
func (e *PlanEngine) Search(ctx context.Context, input *domain.PlanInput, totalMonths int) ([]domain.Scenario, error) {
	lo, hi := 0, input.MaxDeposit
	if input.MaxDeposit < 0 {
		lo, hi = input.MaxDeposit, 0
	}

	scenarios := make([]domain.Scenario, 0, hi-lo+1)
	for deposit := lo; deposit <= hi; deposit++ {
		// Check context cancellation once per deposit column
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for yield := 0; yield <= MaxYieldPct; yield++ {
			final := Simulate(input.InitialCapital, yield, deposit, totalMonths)
			if final.GreaterThanOrEqual(input.Goal) {
				if e.Debug {
					e.Logger.Debugf("deposit %d reaches goal at %d%% yield (final %s)",
						deposit, yield, final.StringFixed(2))
				}
				scenarios = append(scenarios, domain.Scenario{
					Deposit:      deposit,
					YieldPct:     yield,
					FinalCapital: final,
				})
				break
			}
		}
	}

	return scenarios, nil
}
