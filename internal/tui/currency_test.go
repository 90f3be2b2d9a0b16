package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickconvert/quickconvert/internal/convert"
	"github.com/quickconvert/quickconvert/internal/rates"
	"github.com/quickconvert/quickconvert/internal/screen"
)

type stubFetcher struct {
	tables map[string]convert.RateTable
	err    error
	bases  []string
	ctxs   []context.Context
}

func (f *stubFetcher) FetchRates(ctx context.Context, base string) (convert.RateTable, error) {
	f.bases = append(f.bases, base)
	f.ctxs = append(f.ctxs, ctx)
	if f.err != nil {
		return convert.RateTable{}, f.err
	}
	return f.tables[base], nil
}

func newStub() *stubFetcher {
	return &stubFetcher{tables: map[string]convert.RateTable{
		"USD": {Base: "USD", Rates: map[string]float64{"USD": 1, "INR": 80, "EUR": 0.5}},
		"EUR": {Base: "EUR", Rates: map[string]float64{"EUR": 1, "INR": 90, "USD": 2}},
	}}
}

// deliver runs cmd and feeds every rate result back into m.
func deliver(m *CurrencyModel, cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		if r, ok := msg.(ratesFetchedMsg); ok {
			m.Update(r)
		}
	}
}

func TestCurrencyModel_InitialFetch(t *testing.T) {
	fetcher := newStub()
	m := NewCurrencyModel(context.Background(), fetcher, screen.NewCurrencyReducer())

	cmd := m.Init()
	assert.True(t, m.State().Loading)
	assert.Contains(t, m.View(), "Fetching rates")

	deliver(m, cmd)
	assert.Equal(t, []string{"USD"}, fetcher.bases)
	assert.False(t, m.State().Loading)
	assert.Equal(t, "80", m.State().ToValue)
}

func TestCurrencyModel_FromUnitCancelsPreviousFetch(t *testing.T) {
	fetcher := newStub()
	m := NewCurrencyModel(context.Background(), fetcher, screen.NewCurrencyReducer())
	deliver(m, m.Init())

	_, cmd := m.Update(runes("f"))
	assert.Equal(t, "EUR", m.State().FromUnit.Code)
	assert.True(t, m.State().Loading)

	_, cmd2 := m.Update(runes("f"))
	assert.Equal(t, "JPY", m.State().FromUnit.Code)

	deliver(m, cmd)
	require.Len(t, fetcher.ctxs, 2)
	assert.ErrorIs(t, fetcher.ctxs[1].Err(), context.Canceled)
	assert.True(t, m.State().Loading, "stale EUR result must not apply")

	fetcher.tables["JPY"] = convert.RateTable{Base: "JPY", Rates: map[string]float64{"JPY": 1, "INR": 0.5}}
	deliver(m, cmd2)
	assert.False(t, m.State().Loading)
	assert.Equal(t, "0.5", m.State().ToValue)
}

func TestCurrencyModel_ToUnitDoesNotFetch(t *testing.T) {
	fetcher := newStub()
	m := NewCurrencyModel(context.Background(), fetcher, screen.NewCurrencyReducer())
	deliver(m, m.Init())

	_, cmd := m.Update(runes("t"))
	assert.Nil(t, cmd)
	assert.Len(t, fetcher.bases, 1)
	assert.Equal(t, "USD", m.State().ToUnit.Code)
	assert.Equal(t, "1", m.State().ToValue)
}

func TestCurrencyModel_StickyError(t *testing.T) {
	fetcher := &stubFetcher{err: &rates.APIError{Base: "USD", Result: "error"}}
	m := NewCurrencyModel(context.Background(), fetcher, screen.NewCurrencyReducer())
	deliver(m, m.Init())

	assert.Equal(t, rates.MessageAPIError, m.State().DisplayToValue())
	typeString(t, m, "5")
	assert.Equal(t, "15", m.State().FromValue)
	assert.Contains(t, m.View(), rates.MessageAPIError)
}

func TestCurrencyModel_NetworkError(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	m := NewCurrencyModel(context.Background(), fetcher, screen.NewCurrencyReducer())
	deliver(m, m.Init())
	assert.Equal(t, rates.MessageNetworkError, m.State().DisplayToValue())
}

func TestCurrencyModel_BackCancels(t *testing.T) {
	fetcher := newStub()
	m := NewCurrencyModel(context.Background(), fetcher, screen.NewCurrencyReducer())
	cmd := m.Init()

	_, back := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, back)
	assert.Equal(t, backMsg{}, back())

	deliver(m, cmd)
	require.Len(t, fetcher.ctxs, 1)
	assert.ErrorIs(t, fetcher.ctxs[0].Err(), context.Canceled)
}

// cancelAwareFetcher fails with the context error once its request is cancelled.
type cancelAwareFetcher struct {
	*stubFetcher
}

func (f cancelAwareFetcher) FetchRates(ctx context.Context, base string) (convert.RateTable, error) {
	if err := ctx.Err(); err != nil {
		return convert.RateTable{}, err
	}
	return f.stubFetcher.FetchRates(ctx, base)
}

func TestCurrencyModel_IgnoresResultsFromOtherScreens(t *testing.T) {
	fetcher := newStub()
	first := NewCurrencyModel(context.Background(), fetcher, screen.NewCurrencyReducer())
	second := NewCurrencyModel(context.Background(), fetcher, screen.NewCurrencyReducer())

	firstCmd := first.Init()
	deliver(second, second.Init())
	require.Equal(t, "80", second.State().ToValue)

	for _, msg := range collect(firstCmd) {
		if r, ok := msg.(ratesFetchedMsg); ok {
			second.Update(ratesFetchedMsg{screen: r.screen, seq: r.seq, err: context.Canceled})
		}
	}
	assert.Empty(t, second.State().Error)
	assert.Equal(t, "80", second.State().DisplayToValue())
}

func TestAppModel_ReopenedCurrencyIgnoresCancelledFetch(t *testing.T) {
	start := screen.KindCurrency
	fetcher := cancelAwareFetcher{newStub()}
	app := NewAppModel(DefaultOptions(context.Background(), fetcher), &start)

	oldCmd := app.Init()
	app.Update(backMsg{})
	_, newCmd := app.Update(openScreenMsg{kind: screen.KindCurrency})

	forward := func(cmd tea.Cmd) {
		for _, msg := range collect(cmd) {
			if r, ok := msg.(ratesFetchedMsg); ok {
				app.Update(r)
			}
		}
	}
	forward(newCmd)
	reopened := app.Active().(*CurrencyModel)
	require.Equal(t, "80", reopened.State().DisplayToValue())

	forward(oldCmd)
	assert.Empty(t, reopened.State().Error)
	assert.Equal(t, "80", reopened.State().DisplayToValue())
}
