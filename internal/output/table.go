package output

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/goalplan/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	bestStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// TableFormatter formats a plan result as a console table with the
// recommended scenario highlighted.
type TableFormatter struct {
	Currency string // ISO 4217 code used for amount rendering
}

// NewTableFormatter creates a table formatter rendering USD amounts.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{Currency: money.USD}
}

const tableWidth = 66

// Format generates the scenario table.
func (tf *TableFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("SAVINGS PLAN SCENARIOS") + "\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("Goal:            %s\n", tf.amount(result.Input.Goal)))
	sb.WriteString(fmt.Sprintf("Withdraw date:   %s (%d months away)\n", result.Input.WithdrawDate, result.TotalMonths))
	sb.WriteString(fmt.Sprintf("Initial capital: %s\n", tf.amount(result.Input.InitialCapital)))
	sb.WriteString(fmt.Sprintf("Max deposit:     %s/month\n", tf.wholeAmount(result.Input.MaxDeposit)))
	sb.WriteString("\n")

	if len(result.Scenarios) == 0 {
		sb.WriteString("No deposit/yield combination reaches the goal by the withdraw date.\n")
		sb.WriteString(mutedStyle.Render("Try a later date, a higher deposit ceiling, or a lower goal.") + "\n")
		return []byte(sb.String()), nil
	}

	depositWidth := 14
	yieldWidth := 12
	finalWidth := 20

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		depositWidth, "Deposit/month",
		yieldWidth, "Yield %/mo",
		finalWidth, "Final capital"))
	sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

	for _, s := range result.Scenarios {
		row := fmt.Sprintf("%-*s %*d %*s",
			depositWidth, tf.wholeAmount(s.Deposit),
			yieldWidth, s.YieldPct,
			finalWidth, tf.amount(s.FinalCapital))

		if result.HasBest() && s.SameCombination(*result.Best) {
			sb.WriteString(bestStyle.Render(row+"  < recommended") + "\n")
		} else {
			sb.WriteString(row + "\n")
		}
	}

	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")

	if result.HasBest() {
		sb.WriteString(fmt.Sprintf("Recommended: deposit %s/month at %d%% monthly yield, ending at %s\n",
			tf.wholeAmount(result.Best.Deposit),
			result.Best.YieldPct,
			tf.amount(result.Best.FinalCapital)))
	}

	return []byte(sb.String()), nil
}

// amount renders a decimal amount as a currency string.
func (tf *TableFormatter) amount(d decimal.Decimal) string {
	cents := d.Round(2).Shift(2).IntPart()
	return money.New(cents, tf.Currency).Display()
}

// wholeAmount renders a whole-unit amount as a currency string.
func (tf *TableFormatter) wholeAmount(units int) string {
	return money.New(int64(units)*100, tf.Currency).Display()
}
