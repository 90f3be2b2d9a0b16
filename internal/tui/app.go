package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quickconvert/quickconvert/internal/calc"
	"github.com/quickconvert/quickconvert/internal/rates"
	"github.com/quickconvert/quickconvert/internal/screen"
)

// Options carries the collaborators and display settings for every screen.
type Options struct {
	Ctx         context.Context
	Fetcher     rates.Fetcher
	Evaluator   calc.Evaluator
	Speed       screen.SpeedStrategy
	Temperature screen.TemperatureStrategy
	Currency    screen.CurrencyReducer
}

// DefaultOptions returns options with default precision and digit limits.
func DefaultOptions(ctx context.Context, fetcher rates.Fetcher) Options {
	return Options{
		Ctx:         ctx,
		Fetcher:     fetcher,
		Evaluator:   calc.NewEvaluator(),
		Speed:       screen.NewSpeedStrategy(),
		Temperature: screen.NewTemperatureStrategy(),
		Currency:    screen.NewCurrencyReducer(),
	}
}

// openScreenMsg asks the app to open a screen.
type openScreenMsg struct{ kind screen.Kind }

// backMsg asks the app to return to the home menu.
type backMsg struct{}

func openScreen(kind screen.Kind) tea.Cmd {
	return func() tea.Msg { return openScreenMsg{kind: kind} }
}

func goBack() tea.Msg { return backMsg{} }

// closer is implemented by screens holding resources such as in-flight fetches.
type closer interface {
	Close()
}

// AppModel routes between the home menu and the open screen.
type AppModel struct {
	opts   Options
	home   *HomeModel
	active tea.Model
	kind   screen.Kind
	width  int
	height int
}

// NewAppModel returns the app on the home menu, or on start when non-nil.
func NewAppModel(opts Options, start *screen.Kind) *AppModel {
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}
	m := &AppModel{opts: opts, home: NewHomeModel()}
	if start != nil {
		m.kind = *start
		m.active = m.newScreen(*start)
	}
	return m
}

// Active returns the open screen, or nil on the home menu.
func (m *AppModel) Active() tea.Model {
	return m.active
}

func (m *AppModel) newScreen(kind screen.Kind) tea.Model {
	switch kind {
	case screen.KindSpeed:
		return NewSpeedModel(m.opts.Speed)
	case screen.KindTemperature:
		return NewTemperatureModel(m.opts.Temperature)
	case screen.KindCurrency:
		return NewCurrencyModel(m.opts.Ctx, m.opts.Fetcher, m.opts.Currency)
	default:
		return NewCalculatorModel(m.opts.Evaluator)
	}
}

// Init starts the initially open screen, if any.
func (m *AppModel) Init() tea.Cmd {
	if m.active != nil {
		return m.active.Init()
	}
	return m.home.Init()
}

// Update handles navigation and forwards everything else.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.closeActive()
			return m, tea.Quit
		}
	case openScreenMsg:
		m.closeActive()
		m.kind = msg.kind
		m.active = m.newScreen(msg.kind)
		return m, m.active.Init()
	case backMsg:
		m.closeActive()
		return m, nil
	}

	if m.active == nil {
		_, cmd := m.home.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

func (m *AppModel) closeActive() {
	if c, ok := m.active.(closer); ok {
		c.Close()
	}
	m.active = nil
}

// View renders the open screen or the home menu.
func (m *AppModel) View() string {
	if m.active == nil {
		return m.home.View()
	}
	return m.active.View()
}

// HomeModel is the screen menu.
type HomeModel struct {
	kinds  []screen.Kind
	cursor int
	keys   KeyMap
	help   help.Model
}

// NewHomeModel lists every screen.
func NewHomeModel() *HomeModel {
	return &HomeModel{kinds: screen.Kinds(), keys: DefaultKeyMap(), help: help.New()}
}

// Init implements tea.Model.
func (m *HomeModel) Init() tea.Cmd { return nil }

// Selected returns the highlighted screen.
func (m *HomeModel) Selected() screen.Kind {
	return m.kinds[m.cursor]
}

// Update moves the cursor and opens the selected screen.
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.kinds)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		return m, openScreen(m.Selected())
	}
	return m, nil
}

// View renders the menu.
func (m *HomeModel) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("QuickConvert"))
	b.WriteString("\n\n")
	for i, k := range m.kinds {
		if i == m.cursor {
			b.WriteString(SelectedStyle.Render("> " + k.Title()))
		} else {
			b.WriteString("  " + k.Title())
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys.homeHelp()))
	return b.String()
}
