package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/pinggraph/tui/styles"
)

// StatusInfo is the data shown in the top line of the status bar.
type StatusInfo struct {
	Interval   time.Duration
	LastSample time.Time
	Scale      string
	Focused    bool
}

// RenderStatusBar renders the two-line status/footer bar showing pacing,
// last sample time, axis mode, and key bindings.
func RenderStatusBar(theme styles.Theme, info StatusInfo, width int) string {
	bg := theme.Base01
	bgStyle := lipgloss.NewStyle().Background(bg)
	sep := lipgloss.NewStyle().Foreground(theme.Base03).Background(bg).Render(" | ")
	segStyle := lipgloss.NewStyle().Foreground(theme.Base05).Background(bg)

	pollSeg := segStyle.Render(fmt.Sprintf("every: %s", info.Interval))
	lastStr := "never"
	if !info.LastSample.IsZero() {
		lastStr = info.LastSample.Format("15:04:05")
	}
	lastSeg := segStyle.Render(fmt.Sprintf("last: %s", lastStr))
	scaleSeg := segStyle.Render(fmt.Sprintf("scale: %s", info.Scale))

	refresh := "60Hz"
	refreshColor := theme.Base0B
	if !info.Focused {
		refresh = "5Hz"
		refreshColor = theme.Base0A
	}
	refreshSeg := lipgloss.NewStyle().Foreground(refreshColor).Background(bg).Render(refresh)

	topContent := bgStyle.Render(" ") + pollSeg + sep + lastSeg + sep + scaleSeg + sep + refreshSeg
	topWidth := lipgloss.Width(topContent)
	if topWidth < width {
		topContent += bgStyle.Render(strings.Repeat(" ", width-topWidth))
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.Base0D).Background(bg).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Base04).Background(bg)
	spacer := bgStyle.Render("  ")

	keys := bgStyle.Render(" ") +
		keyStyle.Render("e") + descStyle.Render(":address") + spacer +
		keyStyle.Render("r") + descStyle.Render(":reset") + spacer +
		keyStyle.Render("a") + descStyle.Render(":auto") + spacer +
		keyStyle.Render("+/-") + descStyle.Render(":max") + spacer +
		keyStyle.Render("l") + descStyle.Render(":loss") + spacer +
		keyStyle.Render("s") + descStyle.Render(":settings") + spacer +
		keyStyle.Render("?") + descStyle.Render(":help") + spacer +
		keyStyle.Render("q") + descStyle.Render(":quit")

	keysWidth := lipgloss.Width(keys)
	if keysWidth < width {
		keys += bgStyle.Render(strings.Repeat(" ", width-keysWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, topContent, keys)
}
