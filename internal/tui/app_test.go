package tui

import (
	"context"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickconvert/quickconvert/internal/convert"
	"github.com/quickconvert/quickconvert/internal/screen"
)

func TestHomeModel_Navigation(t *testing.T) {
	m := NewHomeModel()
	assert.Equal(t, screen.KindCalculator, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, screen.KindSpeed, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, screen.KindTemperature, m.Selected())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, openScreenMsg{kind: screen.KindTemperature}, cmd())

	for _, k := range screen.Kinds() {
		assert.Contains(t, m.View(), k.Title())
	}
}

func TestAppModel_OpenAndBack(t *testing.T) {
	app := NewAppModel(DefaultOptions(context.Background(), newStub()), nil)
	assert.Nil(t, app.Active())

	app.Update(openScreenMsg{kind: screen.KindSpeed})
	require.IsType(t, &ConverterModel[convert.SpeedUnit]{}, app.Active())

	app.Update(runes("3"))
	assert.Contains(t, app.View(), "3")

	app.Update(backMsg{})
	assert.Nil(t, app.Active())
	assert.Contains(t, app.View(), "QuickConvert")
}

func TestAppModel_StartScreen(t *testing.T) {
	start := screen.KindCurrency
	fetcher := newStub()
	app := NewAppModel(DefaultOptions(context.Background(), fetcher), &start)

	cmd := app.Init()
	require.IsType(t, &CurrencyModel{}, app.Active())
	for _, msg := range collect(cmd) {
		if r, ok := msg.(ratesFetchedMsg); ok {
			app.Update(r)
		}
	}
	assert.Equal(t, "80", app.Active().(*CurrencyModel).State().ToValue)
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	app := NewAppModel(DefaultOptions(context.Background(), newStub()), nil)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDetectOutputMode(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, OutputModePlain, DetectOutputMode(true, os.Stdin, os.Stdout))
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, f, f))
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, nil, nil))
}
