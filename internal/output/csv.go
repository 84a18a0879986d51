package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/rgehrsitz/goalplan/internal/domain"
)

// CSVFormatter formats a plan result as CSV, one row per scenario.
type CSVFormatter struct{}

// Format generates CSV output.
func (cf *CSVFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{"deposit", "yield_pct", "final_capital", "best"}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, s := range result.Scenarios {
		best := result.HasBest() && s.SameCombination(*result.Best)
		row := []string{
			strconv.Itoa(s.Deposit),
			strconv.Itoa(s.YieldPct),
			s.FinalCapital.StringFixed(2),
			strconv.FormatBool(best),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return []byte(sb.String()), nil
}
