package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Semantic aliases
const (
	colorAccent  = colorBlue
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorMuted   = colorOverlay1
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	priceStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	cursorStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0)
	statusStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)
	footerStyle    = lipgloss.NewStyle().Foreground(colorSubtext0).Background(colorSurface0).Padding(0, 1)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	promptStyle    = lipgloss.NewStyle().Foreground(colorWarning)

	premiumBadge  = lipgloss.NewStyle().Foreground(colorBase).Background(colorMauve).Padding(0, 1)
	featuredBadge = lipgloss.NewStyle().Foreground(colorBase).Background(colorTeal).Padding(0, 1)
	verifiedBadge = lipgloss.NewStyle().Foreground(colorBase).Background(colorGreen).Padding(0, 1)
)

// planBadge renders the visibility badge for a plan, or "" for free.
func planBadge(plan string) string {
	switch plan {
	case "premium":
		return premiumBadge.Render("PREMIUM")
	case "featured":
		return featuredBadge.Render("FEATURED")
	}
	return ""
}
