package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quickconvert/quickconvert/internal/convert"
	"github.com/quickconvert/quickconvert/internal/keypad"
	"github.com/quickconvert/quickconvert/internal/screen"
)

// Unit is a selectable conversion unit.
type Unit interface {
	comparable
	fmt.Stringer
}

// ConverterModel drives screen.Reduce for speed and temperature.
type ConverterModel[U Unit] struct {
	title    string
	state    screen.ConversionState[U]
	strategy screen.Strategy[U]
	units    []U
	keys     KeyMap
	help     help.Model
	notice   string
}

// NewConverterModel returns a converter screen starting from initial.
func NewConverterModel[U Unit](title string, initial screen.ConversionState[U], strategy screen.Strategy[U], units []U) *ConverterModel[U] {
	return &ConverterModel[U]{
		title:    title,
		state:    initial,
		strategy: strategy,
		units:    units,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// NewSpeedModel returns the speed screen.
func NewSpeedModel(strategy screen.SpeedStrategy) *ConverterModel[convert.SpeedUnit] {
	return NewConverterModel(screen.KindSpeed.Title(), screen.NewSpeedState(), screen.Strategy[convert.SpeedUnit](strategy), convert.SpeedUnits())
}

// NewTemperatureModel returns the temperature screen.
func NewTemperatureModel(strategy screen.TemperatureStrategy) *ConverterModel[convert.TemperatureUnit] {
	return NewConverterModel(screen.KindTemperature.Title(), screen.NewTemperatureState(), screen.Strategy[convert.TemperatureUnit](strategy), convert.TemperatureUnits())
}

// State returns the current snapshot.
func (m *ConverterModel[U]) State() screen.ConversionState[U] {
	return m.state
}

// Notice returns the transient digit-limit notice, if any.
func (m *ConverterModel[U]) Notice() string {
	return m.notice
}

// Init implements tea.Model.
func (m *ConverterModel[U]) Init() tea.Cmd { return nil }

// Update translates keys into screen events.
func (m *ConverterModel[U]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.notice = ""

	ev, cmd, handled := converterEvent(keyMsg, m.keys, m.state.Active, m.state.FromUnit, m.state.ToUnit, m.units)
	if !handled {
		if key.Matches(keyMsg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, cmd
	}

	next, err := screen.Reduce(m.state, ev, m.strategy)
	if err != nil {
		m.notice = noticeFor(err)
		return m, nil
	}
	m.state = next
	return m, nil
}

// converterEvent maps a key to a screen event. Navigation keys return a
// command instead and handled=false.
func converterEvent[U comparable](
	msg tea.KeyMsg, keys KeyMap, active screen.Field, from, to U, units []U,
) (screen.Event, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		return nil, tea.Quit, false
	case key.Matches(msg, keys.Back):
		return nil, goBack, false
	case key.Matches(msg, keys.Digit):
		return screen.DigitPressed{D: msg.String()}, nil, true
	case key.Matches(msg, keys.Decimal):
		return screen.DecimalPressed{}, nil, true
	case key.Matches(msg, keys.Backspace):
		return screen.BackspacePressed{}, nil, true
	case key.Matches(msg, keys.Clear):
		return screen.ClearPressed{}, nil, true
	case key.Matches(msg, keys.Sign):
		return screen.SignToggled{}, nil, true
	case key.Matches(msg, keys.Switch):
		return screen.FieldActivated{Field: active.Other()}, nil, true
	case key.Matches(msg, keys.FromUnit):
		return screen.UnitSelected[U]{Side: screen.FieldFrom, Unit: nextUnit(units, from)}, nil, true
	case key.Matches(msg, keys.ToUnit):
		return screen.UnitSelected[U]{Side: screen.FieldTo, Unit: nextUnit(units, to)}, nil, true
	default:
		return nil, nil, false
	}
}

func nextUnit[U comparable](units []U, current U) U {
	for i, u := range units {
		if u == current {
			return units[(i+1)%len(units)]
		}
	}
	if len(units) == 0 {
		return current
	}
	return units[0]
}

func noticeFor(err error) string {
	if errors.Is(err, keypad.ErrMaxDigits) {
		return err.Error()
	}
	return ""
}

// View renders both fields with the active one highlighted.
func (m *ConverterModel[U]) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(renderField(m.state.FromUnit.String(), m.state.FromValue, m.state.Active == screen.FieldFrom, false))
	b.WriteString("\n")
	b.WriteString(renderField(m.state.ToUnit.String(), m.state.ToValue, m.state.Active == screen.FieldTo, false))
	b.WriteString("\n")
	b.WriteString(renderNotice(m.notice))
	b.WriteString(m.help.View(m.keys.converterHelp(m.strategy.AllowsSign())))
	return b.String()
}

func renderField(unit, value string, active, isError bool) string {
	style := FieldStyle
	if active {
		style = ActiveFieldStyle
	}
	text := ValueStyle.Render(keypad.Display(value))
	if isError {
		text = CriticalStyle.Render(value)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		LabelStyle.Width(8).Render(unit),
		style.Width(fieldWidth).Align(lipgloss.Right).Render(text),
	)
	return row
}

func renderNotice(notice string) string {
	if notice == "" {
		return "\n"
	}
	return WarningStyle.Render(notice) + "\n\n"
}
