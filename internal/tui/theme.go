package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
	colorMuted   = colorOverlay1
	colorBorder  = colorSurface1
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText).Padding(1, 2)

	titleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(colorFocus)
	inputBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	itemStyle   = lipgloss.NewStyle().Foreground(colorText)
	indexStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	hintStyle   = lipgloss.NewStyle().Foreground(colorWarning).Italic(true)
	emptyStyle  = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	rawStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	countStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	footerStyle = lipgloss.NewStyle().Background(colorMantle)

	statusStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0)
)
