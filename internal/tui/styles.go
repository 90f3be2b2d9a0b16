package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
//
//nolint:gochecknoglobals // Shared lipgloss palette.
var (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("212")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
	ColorBorder    = lipgloss.Color("63")
	ColorSpinner   = lipgloss.Color("205")
)

// Text styles.
//
//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// ActiveFieldStyle frames the field receiving keypad input.
	ActiveFieldStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorHighlight).
				Padding(0, 1)

	// FieldStyle frames the dependent field.
	FieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)

const fieldWidth = 28
