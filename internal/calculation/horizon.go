package calculation

import (
	"time"

	"github.com/rgehrsitz/goalplan/internal/domain"
)

// MonthsBetween returns the whole number of months from the month
// containing now to the withdraw month. The clock is passed in explicitly
// so callers control "now". May legitimately return zero when the withdraw
// month is the current month.
func MonthsBetween(now time.Time, withdraw domain.WithdrawDate) int {
	years := withdraw.Year - now.Year()
	months := withdraw.Month - int(now.Month())
	return years*12 + months
}
