package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the bindings shared by every screen.
type KeyMap struct {
	Digit     key.Binding
	Decimal   key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Sign      key.Binding
	Operator  key.Binding
	Percent   key.Binding
	Equals    key.Binding
	Switch    key.Binding
	FromUnit  key.Binding
	ToUnit    key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Back      key.Binding
	Quit      key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Digit:     key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "digit")),
		Decimal:   key.NewBinding(key.WithKeys("."), key.WithHelp(".", "decimal")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Sign:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "+/-")),
		Operator:  key.NewBinding(key.WithKeys("+", "-", "*", "/", "x"), key.WithHelp("+-*/", "operator")),
		Percent:   key.NewBinding(key.WithKeys("%"), key.WithHelp("%", "percent")),
		Equals:    key.NewBinding(key.WithKeys("=", "enter"), key.WithHelp("=", "evaluate")),
		Switch:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
		FromUnit:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "from unit")),
		ToUnit:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "to unit")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// helpKeys adapts a binding list to help.KeyMap.
type helpKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding  { return h.short }
func (h helpKeys) FullHelp() [][]key.Binding { return h.full }

func (k KeyMap) homeHelp() helpKeys {
	short := []key.Binding{k.Up, k.Down, k.Select, k.Quit}
	return helpKeys{short: short, full: [][]key.Binding{short}}
}

func (k KeyMap) calculatorHelp() helpKeys {
	return helpKeys{
		short: []key.Binding{k.Operator, k.Equals, k.Clear, k.Back, k.Help},
		full: [][]key.Binding{
			{k.Digit, k.Decimal, k.Operator, k.Percent},
			{k.Equals, k.Backspace, k.Clear},
			{k.Back, k.Quit},
		},
	}
}

func (k KeyMap) converterHelp(sign bool) helpKeys {
	entry := []key.Binding{k.Digit, k.Decimal, k.Backspace, k.Clear}
	if sign {
		entry = append(entry, k.Sign)
	}
	return helpKeys{
		short: []key.Binding{k.Switch, k.FromUnit, k.ToUnit, k.Back, k.Help},
		full: [][]key.Binding{
			entry,
			{k.Switch, k.FromUnit, k.ToUnit},
			{k.Back, k.Quit},
		},
	}
}
