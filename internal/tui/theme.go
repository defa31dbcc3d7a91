package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, matching the overlay page colors.
var (
	colorBase     = lipgloss.Color("#1e1e2e")
	colorMantle   = lipgloss.Color("#181825")
	colorSurface  = lipgloss.Color("#45475a")
	colorText     = lipgloss.Color("#cdd6f4")
	colorSubtext  = lipgloss.Color("#a6adc8")
	colorLavender = lipgloss.Color("#b4befe")
	colorGreen    = lipgloss.Color("#a6e3a1")
	colorPeach    = lipgloss.Color("#fab387")
	colorRed      = lipgloss.Color("#f38ba8")

	styleTitle  = lipgloss.NewStyle().Foreground(colorLavender).Bold(true)
	styleMuted  = lipgloss.NewStyle().Foreground(colorSubtext)
	styleHot    = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)
	styleGood   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleError  = lipgloss.NewStyle().Foreground(colorRed)
	styleValue  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	styleLegend = lipgloss.NewStyle().Foreground(colorSurface)

	stylePane = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface).
			Padding(1, 2)

	// heatStyles index by intensity 0..4, pale to saturated green.
	heatStyles = [5]lipgloss.Style{
		lipgloss.NewStyle().Foreground(colorSurface),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#2d4a33")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#51785a")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#7cb587")),
		lipgloss.NewStyle().Foreground(colorGreen),
	}
)
