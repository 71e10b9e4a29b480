package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all themed lipgloss styles for the application.
type Styles struct {
	FooterKey lipgloss.Style

	// Monitor
	ChartLine lipgloss.Style
	StatsText lipgloss.Style
	LossText  lipgloss.Style
	ErrorText lipgloss.Style
	Dim       lipgloss.Style

	// Modal / overlay
	ModalBorder lipgloss.Style
	ModalTitle  lipgloss.Style

	// Form
	FormLabel       lipgloss.Style
	FormLabelActive lipgloss.Style
	FormValue       lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme Theme) *Styles {
	return &Styles{
		FooterKey: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),

		ChartLine: lipgloss.NewStyle().
			Foreground(theme.Base0C),
		StatsText: lipgloss.NewStyle().
			Foreground(theme.Base05),
		LossText: lipgloss.NewStyle().
			Foreground(theme.Base0A),
		ErrorText: lipgloss.NewStyle().
			Foreground(theme.Base08),
		Dim: lipgloss.NewStyle().
			Foreground(theme.Base04),

		ModalBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Base0D).
			BorderBackground(theme.Base00).
			Background(theme.Base00).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),

		FormLabel: lipgloss.NewStyle().
			Foreground(theme.Base04),
		FormLabelActive: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		FormValue: lipgloss.NewStyle().
			Foreground(theme.Base06),
	}
}
