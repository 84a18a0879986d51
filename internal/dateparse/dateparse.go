// Package dateparse normalizes free-form withdraw date input into a
// validated domain.WithdrawDate. Parsing is separate from the search
// engine so the core only ever sees already-validated dates.
package dateparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rgehrsitz/goalplan/internal/domain"
)

// ParseError describes a withdraw date string that could not be
// understood.
type ParseError struct {
	Input   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse withdraw date %q: %s", e.Input, e.Message)
}

var monthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// Parse reads a free-form withdraw date. Accepted forms:
//
//	2030-06   2030/06   2030.06
//	06/2030   06-2030
//	jun 2030  june 2030  2030 jun
//	2030            (year only, resolves to December of that year)
//
// Month names are case-insensitive; the year token must have four digits
// so numeric forms are never ambiguous. The returned date is not checked
// against the clock; that is the caller's validation step.
func Parse(s string) (domain.WithdrawDate, error) {
	tokens := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '-' || r == '/' || r == '.' || r == ' ' || r == '\t'
	})

	switch len(tokens) {
	case 1:
		year, ok := parseYear(tokens[0])
		if !ok {
			return domain.WithdrawDate{}, &ParseError{Input: s, Message: "expected a four-digit year"}
		}
		return domain.WithdrawDate{Year: year, Month: 12}, nil

	case 2:
		var year, month int
		haveYear, haveMonth := false, false

		for _, tok := range tokens {
			if y, ok := parseYear(tok); ok && !haveYear {
				year, haveYear = y, true
				continue
			}
			if m, ok := parseMonth(tok); ok && !haveMonth {
				month, haveMonth = m, true
				continue
			}
			return domain.WithdrawDate{}, &ParseError{Input: s, Message: fmt.Sprintf("unrecognized token %q", tok)}
		}

		if !haveYear {
			return domain.WithdrawDate{}, &ParseError{Input: s, Message: "missing four-digit year"}
		}
		if !haveMonth {
			return domain.WithdrawDate{}, &ParseError{Input: s, Message: "missing month"}
		}
		return domain.WithdrawDate{Year: year, Month: month}, nil

	default:
		return domain.WithdrawDate{}, &ParseError{Input: s, Message: "expected a month and a year"}
	}
}

func parseYear(tok string) (int, bool) {
	if len(tok) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return year, true
}

func parseMonth(tok string) (int, bool) {
	if m, ok := monthNames[strings.ToLower(tok)]; ok {
		return m, true
	}
	if len(tok) > 2 {
		return 0, false
	}
	m, err := strconv.Atoi(tok)
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}
