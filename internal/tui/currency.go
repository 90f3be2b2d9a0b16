package tui

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quickconvert/quickconvert/internal/convert"
	"github.com/quickconvert/quickconvert/internal/logging"
	"github.com/quickconvert/quickconvert/internal/rates"
	"github.com/quickconvert/quickconvert/internal/screen"
)

// currencyScreenIDs numbers CurrencyModel instances so a result outliving its
// screen is never applied to a later one.
//
//nolint:gochecknoglobals // Process-wide counter shared by every currency screen.
var currencyScreenIDs atomic.Uint64

// ratesFetchedMsg carries a fetch result back to the screen that issued it.
type ratesFetchedMsg struct {
	screen uint64
	seq    uint64
	table  convert.RateTable
	err    error
}

// CurrencyModel drives screen.CurrencyReducer and runs its rate fetches.
// Starting a new fetch cancels the previous one.
type CurrencyModel struct {
	id         uint64
	ctx        context.Context
	fetcher    rates.Fetcher
	reducer    screen.CurrencyReducer
	state      screen.CurrencyState
	currencies []convert.Currency
	cancel     context.CancelFunc
	loading    *LoadingState
	keys       KeyMap
	help       help.Model
	notice     string
}

// NewCurrencyModel returns the currency screen. Rates are requested by Init.
func NewCurrencyModel(ctx context.Context, fetcher rates.Fetcher, reducer screen.CurrencyReducer) *CurrencyModel {
	if ctx == nil {
		ctx = context.Background()
	}
	return &CurrencyModel{
		id:         currencyScreenIDs.Add(1),
		ctx:        ctx,
		fetcher:    fetcher,
		reducer:    reducer,
		state:      screen.NewCurrencyState(),
		currencies: convert.WorldCurrencies(),
		loading:    NewLoadingState(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

// State returns the current snapshot.
func (m *CurrencyModel) State() screen.CurrencyState {
	return m.state
}

// Notice returns the transient digit-limit notice, if any.
func (m *CurrencyModel) Notice() string {
	return m.notice
}

// Init requests the initial rates.
func (m *CurrencyModel) Init() tea.Cmd {
	return m.apply(screen.RatesRequested{})
}

// Close cancels any in-flight fetch.
func (m *CurrencyModel) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Update handles keys, fetch results and spinner ticks.
func (m *CurrencyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ratesFetchedMsg:
		if msg.screen != m.id {
			return m, nil
		}
		if msg.err != nil {
			return m, m.apply(screen.RatesFailed{Seq: msg.seq, Err: msg.err})
		}
		return m, m.apply(screen.RatesLoaded{Seq: msg.seq, Table: msg.table})
	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		return m, m.loading.Update(msg)
	case tea.KeyMsg:
		m.notice = ""
		ev, cmd, handled := converterEvent(msg, m.keys, m.state.Active, m.state.FromUnit, m.state.ToUnit, m.currencies)
		if !handled {
			if key.Matches(msg, m.keys.Help) {
				m.help.ShowAll = !m.help.ShowAll
			}
			if cmd != nil {
				m.Close()
			}
			return m, cmd
		}
		return m, m.apply(ev)
	}
	return m, nil
}

// apply reduces ev and starts a fetch when the reducer asks for one.
func (m *CurrencyModel) apply(ev screen.Event) tea.Cmd {
	next, req, err := m.reducer.Reduce(m.state, ev)
	if err != nil {
		m.notice = noticeFor(err)
		return nil
	}
	m.state = next
	if req == nil {
		return nil
	}
	return tea.Batch(m.loading.Init(), m.fetch(*req))
}

func (m *CurrencyModel) fetch(req screen.FetchRequest) tea.Cmd {
	m.Close()
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel

	fetcher, id := m.fetcher, m.id
	return func() tea.Msg {
		log := logging.FromContext(ctx).With().
			Str("component", "tui.currency").
			Str("base", req.Base).
			Uint64("seq", req.Seq).
			Logger()
		if fetcher == nil {
			return ratesFetchedMsg{screen: id, seq: req.Seq, err: rates.ErrTransport}
		}
		log.Debug().Msg("fetching rates")
		table, err := fetcher.FetchRates(ctx, req.Base)
		if err != nil {
			log.Warn().Err(err).Msg("rate fetch failed")
			return ratesFetchedMsg{screen: id, seq: req.Seq, err: err}
		}
		return ratesFetchedMsg{screen: id, seq: req.Seq, table: table}
	}
}

// View renders both fields, the sticky error and the loading spinner.
func (m *CurrencyModel) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(screen.KindCurrency.Title()))
	b.WriteString("\n\n")
	b.WriteString(renderField(m.state.FromUnit.Code, m.state.FromValue, m.state.Active == screen.FieldFrom, false))
	b.WriteString("\n")
	b.WriteString(renderField(m.state.ToUnit.Code, m.state.DisplayToValue(), m.state.Active == screen.FieldTo, m.state.Error != ""))
	b.WriteString("\n")
	if m.state.Loading {
		b.WriteString(RenderLoading(m.loading))
		b.WriteString("\n")
	} else {
		b.WriteString(SubtleStyle.Render(m.state.FromUnit.Name + " → " + m.state.ToUnit.Name))
		b.WriteString("\n")
	}
	b.WriteString(renderNotice(m.notice))
	b.WriteString(m.help.View(m.keys.converterHelp(false)))
	return b.String()
}
