package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/goalplan/internal/dateparse"
	"github.com/rgehrsitz/goalplan/internal/domain"
)

// InputParser handles parsing of plan configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// planFile mirrors the YAML layout of a plan file. The withdraw date is a
// free-form string so plan files accept the same forms as the CLI.
type planFile struct {
	Goal           decimal.Decimal `yaml:"goal"`
	WithdrawDate   string          `yaml:"withdraw_date"`
	InitialCapital decimal.Decimal `yaml:"initial_capital"`
	MaxDeposit     int             `yaml:"max_deposit"`
}

// LoadFromFile loads a plan from a YAML file and validates it against now.
func (ip *InputParser) LoadFromFile(filename string, now time.Time) (*domain.PlanInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data, now)
}

// Load parses plan YAML and validates the result.
func (ip *InputParser) Load(data []byte, now time.Time) (*domain.PlanInput, error) {
	var pf planFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if pf.WithdrawDate == "" {
		return nil, fmt.Errorf("plan validation failed: withdraw_date is required")
	}
	withdraw, err := dateparse.Parse(pf.WithdrawDate)
	if err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	input := &domain.PlanInput{
		Goal:           pf.Goal,
		WithdrawDate:   withdraw,
		InitialCapital: pf.InitialCapital,
		MaxDeposit:     pf.MaxDeposit,
	}
	if err := input.Validate(now); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return input, nil
}
