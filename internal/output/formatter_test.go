package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/goalplan/internal/domain"
)

func sampleResult() *domain.PlanResult {
	best := domain.Scenario{Deposit: 500, YieldPct: 2, FinalCapital: decimal.RequireFromString("126824.18")}
	return &domain.PlanResult{
		Input: domain.PlanInput{
			Goal:           decimal.NewFromInt(120000),
			WithdrawDate:   domain.WithdrawDate{Year: 2030, Month: 6},
			InitialCapital: decimal.NewFromInt(10000),
			MaxDeposit:     500,
		},
		TotalMonths: 46,
		Scenarios: []domain.Scenario{
			{Deposit: 0, YieldPct: 6, FinalCapital: decimal.RequireFromString("121000.00")},
			best,
		},
		Best: &best,
	}
}

func emptyResult() *domain.PlanResult {
	return &domain.PlanResult{
		Input: domain.PlanInput{
			Goal:         decimal.NewFromInt(120000),
			WithdrawDate: domain.WithdrawDate{Year: 2030, Month: 6},
			MaxDeposit:   500,
		},
		TotalMonths: 46,
	}
}

func TestGetFormatterByName(t *testing.T) {
	assert.IsType(t, &TableFormatter{}, GetFormatterByName("table"))
	assert.IsType(t, &TableFormatter{}, GetFormatterByName("console"))
	assert.IsType(t, &TableFormatter{}, GetFormatterByName(""))
	assert.IsType(t, &CSVFormatter{}, GetFormatterByName("CSV"))
	assert.IsType(t, &JSONFormatter{}, GetFormatterByName("json"))
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestTableFormatter_Format(t *testing.T) {
	data, err := NewTableFormatter().Format(sampleResult())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "SAVINGS PLAN SCENARIOS")
	assert.Contains(t, out, "2030-06")
	assert.Contains(t, out, "46 months")
	assert.Contains(t, out, "Deposit/month")
	assert.Equal(t, 1, strings.Count(out, "< recommended"), "exactly one row is marked best")
	assert.Contains(t, out, "Recommended: deposit")
}

func TestTableFormatter_Format_NoScenario(t *testing.T) {
	data, err := NewTableFormatter().Format(emptyResult())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "No deposit/yield combination reaches the goal")
	assert.NotContains(t, out, "recommended")
}

func TestCSVFormatter_Format(t *testing.T) {
	data, err := (&CSVFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "deposit,yield_pct,final_capital,best", lines[0])
	assert.Equal(t, "0,6,121000.00,false", lines[1])
	assert.Equal(t, "500,2,126824.18,true", lines[2])
}

func TestCSVFormatter_Format_NoScenario(t *testing.T) {
	data, err := (&CSVFormatter{}).Format(emptyResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1, "header only when no scenario exists")
}

func TestJSONFormatter_Format(t *testing.T) {
	data, err := (&JSONFormatter{Pretty: true}).Format(sampleResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "best")
	assert.Contains(t, decoded, "scenarios")
	assert.EqualValues(t, 46, decoded["totalMonths"])
}

func TestJSONFormatter_Format_NoScenario(t *testing.T) {
	data, err := (&JSONFormatter{}).Format(emptyResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	_, hasBest := decoded["best"]
	assert.False(t, hasBest, "best is omitted when no scenario reaches the goal")
}
