// Package output renders plan results for the console. The core hands the
// presenter an ordered scenario list plus an optional best scenario; all
// currency and table formatting lives here.
package output

import (
	"strings"

	"github.com/rgehrsitz/goalplan/internal/domain"
)

// Formatter renders a plan result in one output format.
type Formatter interface {
	Format(result *domain.PlanResult) ([]byte, error)
}

// GetFormatterByName returns the formatter for the given format name, or
// nil if the name is unknown. An empty name selects the console table.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "", "table", "console":
		return NewTableFormatter()
	case "csv":
		return &CSVFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	default:
		return nil
	}
}
