package dash

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("86")  // Cyan
	colorSecondary = lipgloss.Color("240") // Gray
	colorWarning   = lipgloss.Color("214") // Orange
	colorDanger    = lipgloss.Color("196") // Red
	colorMuted     = lipgloss.Color("245") // Light gray
)

// Styles
var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(colorMuted)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Reverse(true)

	tabBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorSecondary)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 1)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	listHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	selectedLineStyle = lipgloss.NewStyle().
				Reverse(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	popupStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	popupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)
)

// chartPalette mirrors the fixed per-series color list of the charts; series
// beyond the palette wrap around.
var chartPalette = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Blue,
	asciigraph.Fuchsia,
	asciigraph.Aqua,
	asciigraph.Gray,
	asciigraph.White,
}

// legendPalette matches chartPalette for rendering series legends with
// lipgloss.
var legendPalette = []lipgloss.Color{
	lipgloss.Color("9"),
	lipgloss.Color("10"),
	lipgloss.Color("11"),
	lipgloss.Color("12"),
	lipgloss.Color("13"),
	lipgloss.Color("14"),
	lipgloss.Color("8"),
	lipgloss.Color("15"),
}
