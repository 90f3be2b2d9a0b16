package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quickconvert/quickconvert/internal/calc"
)

// CalculatorModel drives calc.Reduce from key presses.
type CalculatorModel struct {
	state calc.State
	eval  calc.Evaluator
	keys  KeyMap
	help  help.Model
}

// NewCalculatorModel returns a cleared calculator.
func NewCalculatorModel(eval calc.Evaluator) *CalculatorModel {
	if eval == nil {
		eval = calc.NewEvaluator()
	}
	return &CalculatorModel{state: calc.NewState(), eval: eval, keys: DefaultKeyMap(), help: help.New()}
}

// State returns the current snapshot.
func (m *CalculatorModel) State() calc.State {
	return m.state
}

// Init implements tea.Model.
func (m *CalculatorModel) Init() tea.Cmd { return nil }

// Update translates keys into calculator events.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var ev calc.Event
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		return m, goBack
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Digit):
		ev = calc.Digit{D: keyMsg.String()}
	case key.Matches(keyMsg, m.keys.Operator):
		ev = calc.Operator{Op: keyMsg.String()}
	case key.Matches(keyMsg, m.keys.Decimal):
		ev = calc.Decimal{}
	case key.Matches(keyMsg, m.keys.Percent):
		ev = calc.Percent{}
	case key.Matches(keyMsg, m.keys.Equals):
		ev = calc.Equals{}
	case key.Matches(keyMsg, m.keys.Backspace):
		ev = calc.Backspace{}
	case key.Matches(keyMsg, m.keys.Clear):
		ev = calc.Clear{}
	default:
		return m, nil
	}

	m.state = calc.Reduce(m.state, ev, m.eval)
	return m, nil
}

// View renders the equation line above the main display.
func (m *CalculatorModel) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Calculator"))
	b.WriteString("\n\n")

	equation := ""
	if m.state.Done {
		equation = m.state.Equation
	}
	b.WriteString(SubtleStyle.Render(equation))
	b.WriteString("\n")

	display := ValueStyle
	if m.state.Done && m.state.Result == calc.ErrorResult {
		display = CriticalStyle
	}
	b.WriteString(ActiveFieldStyle.Width(fieldWidth).Align(lipgloss.Right).Render(display.Render(m.state.Display())))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys.calculatorHelp()))
	return b.String()
}
