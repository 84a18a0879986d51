// Package tui implements the interactive prompt: the four plan inputs are
// collected one field at a time, then the scenario table is rendered in
// place.
package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/goalplan/internal/dateparse"
	"github.com/rgehrsitz/goalplan/internal/domain"
	"github.com/rgehrsitz/goalplan/internal/output"
	"github.com/rgehrsitz/goalplan/internal/recommend"
)

const (
	fieldGoal = iota
	fieldWithdrawDate
	fieldInitialCapital
	fieldMaxDeposit
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Savings goal",
	"Withdraw date (e.g. jun 2030, 2030-06)",
	"Initial capital",
	"Max deposit per month (negative = withdrawal)",
}

// Model is the prompt state: input fields, the field in focus, and the
// rendered result once the plan has run.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	now     time.Time
	planner *recommend.Planner
	err     error
	result  string
	done    bool
}

// NewModel creates the prompt model with the given clock.
func NewModel(now time.Time) Model {
	m := Model{
		now:     now,
		planner: recommend.NewPlanner(),
	}

	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.CharLimit = 32
		ti.Width = 24
		m.inputs[i] = ti
	}
	m.inputs[fieldGoal].Placeholder = "120000"
	m.inputs[fieldWithdrawDate].Placeholder = "jun 2030"
	m.inputs[fieldInitialCapital].Placeholder = "0"
	m.inputs[fieldMaxDeposit].Placeholder = "500"
	m.inputs[fieldGoal].Focus()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.done {
				return m, tea.Quit
			}
			return m.advance()
		default:
			if m.done {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// advance validates the focused field and moves on; after the last field
// it runs the plan.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if err := m.validateField(m.focus); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil

	if m.focus < fieldCount-1 {
		m.inputs[m.focus].Blur()
		m.focus++
		m.inputs[m.focus].Focus()
		return m, textinput.Blink
	}

	return m.runPlan()
}

func (m Model) validateField(i int) error {
	value := m.inputs[i].Value()
	switch i {
	case fieldGoal, fieldInitialCapital:
		_, err := decimal.NewFromString(value)
		return err
	case fieldWithdrawDate:
		_, err := dateparse.Parse(value)
		return err
	case fieldMaxDeposit:
		_, err := strconv.Atoi(value)
		return err
	}
	return nil
}

func (m Model) runPlan() (tea.Model, tea.Cmd) {
	goal, _ := decimal.NewFromString(m.inputs[fieldGoal].Value())
	withdraw, _ := dateparse.Parse(m.inputs[fieldWithdrawDate].Value())
	initial, _ := decimal.NewFromString(m.inputs[fieldInitialCapital].Value())
	maxDeposit, _ := strconv.Atoi(m.inputs[fieldMaxDeposit].Value())

	input := &domain.PlanInput{
		Goal:           goal,
		WithdrawDate:   withdraw,
		InitialCapital: initial,
		MaxDeposit:     maxDeposit,
	}
	if err := input.Validate(m.now); err != nil {
		m.err = err
		return m, nil
	}

	result, err := m.planner.Run(context.Background(), input, m.now)
	if err != nil {
		m.err = err
		return m, nil
	}

	rendered, err := output.NewTableFormatter().Format(result)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.result = string(rendered)
	m.done = true
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return m.result + "\n" + helpStyle.Render("press any key to exit") + "\n"
	}

	s := titleStyle.Render("goalplan — savings scenario prompt") + "\n\n"
	for i := 0; i < fieldCount; i++ {
		label := labelStyle.Render(fieldLabels[i])
		if i == m.focus {
			label = activeLabelStyle.Render(fieldLabels[i])
		}
		s += label + "\n" + m.inputs[i].View() + "\n\n"
	}

	if m.err != nil {
		s += errorStyle.Render(m.err.Error()) + "\n\n"
	}

	s += helpStyle.Render("enter: next field • esc: quit") + "\n"
	return s
}
