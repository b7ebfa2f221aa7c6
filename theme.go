package main

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorFlamingo  lipgloss.Color = "#f2cdcd"
	colorPink      lipgloss.Color = "#f5c2e7"
	colorMauve     lipgloss.Color = "#cba6f7"
	colorRed       lipgloss.Color = "#f38ba8"
	colorMaroon    lipgloss.Color = "#eba0ac"
	colorPeach     lipgloss.Color = "#fab387"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorTeal      lipgloss.Color = "#94e2d5"
	colorSky       lipgloss.Color = "#89dceb"
	colorSapphire  lipgloss.Color = "#74c7ec"
	colorBlue      lipgloss.Color = "#89b4fa"
	colorLavender  lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorBrand   = colorTeal
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCrust).Background(colorBrand).Padding(0, 2)
	footerStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 2)

	sectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	subtleStyle       = lipgloss.NewStyle().Foreground(colorOverlay1)
	cursorStyle       = lipgloss.NewStyle().Foreground(colorFocus)
	selectedStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorFocus)

	formLabelStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	fieldErrorStyle = lipgloss.NewStyle().Foreground(colorError)
	disabledStyle   = lipgloss.NewStyle().Foreground(colorOverlay0)
	submitStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)

	noticeSuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCrust).Background(colorSuccess)
	noticeErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCrust).Background(colorError)

	overlayStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
)
