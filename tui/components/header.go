package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/pinggraph/tui/styles"
)

// maxHeaderAddress bounds the address shown in the header.
const maxHeaderAddress = 40

// RenderHeader renders the top header bar with app name, target address,
// live/failing status, and a short latency trend.
func RenderHeader(theme styles.Theme, address string, healthy bool, trend []float64, width int, ver string) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Base0D).
		Background(theme.Base01).
		Bold(true).
		Render("pinggraph")

	displayAddr := Truncate(address, maxHeaderAddress)
	if displayAddr == "" {
		displayAddr = "(no address)"
	}
	center := lipgloss.NewStyle().
		Foreground(theme.Base05).
		Background(theme.Base01).
		Render(displayAddr)

	status := "FAILING"
	statusColor := theme.Base08
	if healthy {
		status = "LIVE"
		statusColor = theme.Base0B
	}
	right := lipgloss.NewStyle().
		Foreground(statusColor).
		Background(theme.Base01).
		Render(status)

	spark := lipgloss.NewStyle().
		Foreground(theme.Base0C).
		Background(theme.Base01).
		Render(Sparkline(trend, 16))

	versionSeg := lipgloss.NewStyle().
		Foreground(theme.Base04).
		Background(theme.Base01).
		Render("v" + ver)

	content := fmt.Sprintf(" %s  |  %s  |  %s  |  %s  |  %s ", left, center, right, spark, versionSeg)

	return lipgloss.NewStyle().
		Background(theme.Base01).
		Width(width).
		Render(content)
}
