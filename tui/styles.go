package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// ---------------------------------------------------------------------------
// Theme
// ---------------------------------------------------------------------------

// Theme groups every style the UI draws with. Hosts may supply their own;
// zero-value fields are not backfilled, so custom themes should start from
// DefaultTheme.
type Theme struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Modal      lipgloss.Style
	Row        lipgloss.Style
	RowActive  lipgloss.Style
	RowLoading lipgloss.Style
	RowErrored lipgloss.Style
	Button     lipgloss.Style
	Link       lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Help       lipgloss.Style
}

// DefaultTheme returns the stock Catppuccin-flavoured theme.
func DefaultTheme() *Theme {
	return &Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(colorMauve),
		Subtitle:   lipgloss.NewStyle().Foreground(colorSubtext0),
		Modal:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(1, 3),
		Row:        lipgloss.NewStyle().Foreground(colorText),
		RowActive:  lipgloss.NewStyle().Bold(true).Foreground(colorLavender),
		RowLoading: lipgloss.NewStyle().Foreground(colorOverlay1).Italic(true),
		RowErrored: lipgloss.NewStyle().Foreground(colorRed).Strikethrough(true),
		Button:     lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorMauve).Padding(0, 2),
		Link:       lipgloss.NewStyle().Foreground(colorBlue).Underline(true),
		Error:      lipgloss.NewStyle().Bold(true).Foreground(colorRed),
		Success:    lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
		Help:       lipgloss.NewStyle().Foreground(colorOverlay1),
	}
}

// rowStyle picks the style for a provider row given its polled state.
func (t *Theme) rowStyle(selected, loading, errored bool) lipgloss.Style {
	switch {
	case errored:
		return t.RowErrored
	case loading:
		return t.RowLoading
	case selected:
		return t.RowActive
	default:
		return t.Row
	}
}
