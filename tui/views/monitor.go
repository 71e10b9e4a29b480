package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/pinggraph/internal/engine"
	"github.com/tonhe/pinggraph/tui/components"
	"github.com/tonhe/pinggraph/tui/keys"
	"github.com/tonhe/pinggraph/tui/styles"
)

// MaxDisplayLen is the longest address or error text shown inline.
const MaxDisplayLen = 90

// ScaleStep is the manual axis adjustment per keypress, in milliseconds.
const ScaleStep = 10.0

// MonitorAction tells the app what happened in the monitor view.
type MonitorAction int

const (
	MonitorNone MonitorAction = iota
	// MonitorAddressCommitted means the user confirmed an edited address.
	MonitorAddressCommitted
	// MonitorAddressReverted means the user abandoned an edit.
	MonitorAddressReverted
	// MonitorReset means the series was cleared.
	MonitorReset
)

// MonitorView shows the target address, the latency chart, and the stats
// line for a single target.
type MonitorView struct {
	theme  styles.Theme
	sty    *styles.Styles
	target *engine.Target
	series *engine.Series

	input   textinput.Model
	editing bool
	preEdit string

	scale    engine.Scale
	showLoss bool

	width  int
	height int
}

// NewMonitorView creates a MonitorView over the given target and series.
func NewMonitorView(theme styles.Theme, target *engine.Target, series *engine.Series) MonitorView {
	input := textinput.New()
	input.Placeholder = engine.DefaultAddress
	input.Prompt = ""
	input.Width = 48

	return MonitorView{
		theme:    theme,
		sty:      styles.NewStyles(theme),
		target:   target,
		series:   series,
		input:    input,
		scale:    engine.Scale{Auto: true, Manual: 100},
		showLoss: true,
	}
}

// SetTheme restyles the view.
func (v *MonitorView) SetTheme(theme styles.Theme) {
	v.theme = theme
	v.sty = styles.NewStyles(theme)
}

// SetSize updates the available dimensions for the view.
func (v *MonitorView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetSeries replaces the series the view reads from.
func (v *MonitorView) SetSeries(series *engine.Series) {
	v.series = series
}

// SetDisplay applies the axis and loss display preferences.
func (v *MonitorView) SetDisplay(scale engine.Scale, showLoss bool) {
	scale.Manual = engine.ClampManualMax(scale.Manual)
	v.scale = scale
	v.showLoss = showLoss
}

// Scale returns the current axis settings.
func (v MonitorView) Scale() engine.Scale {
	return v.scale
}

// ShowLoss reports whether the loss clause is displayed.
func (v MonitorView) ShowLoss() bool {
	return v.showLoss
}

// Editing reports whether the address field has focus.
func (v MonitorView) Editing() bool {
	return v.editing
}

// Update handles key messages for the monitor view.
func (v MonitorView) Update(msg tea.Msg) (MonitorView, tea.Cmd, MonitorAction) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.editing {
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd, MonitorNone
		}
		return v, nil, MonitorNone
	}

	if v.editing {
		return v.updateEditing(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.DefaultKeyMap.Edit):
		v.editing = true
		v.preEdit = v.target.Address()
		v.input.SetValue(v.preEdit)
		v.input.CursorEnd()
		cmd := v.input.Focus()
		return v, cmd, MonitorNone

	case key.Matches(keyMsg, keys.DefaultKeyMap.Reset):
		v.series.Reset()
		return v, nil, MonitorReset

	case key.Matches(keyMsg, keys.DefaultKeyMap.AutoScale):
		if v.scale.Auto {
			v.toManual()
		} else {
			v.scale.Auto = true
		}

	case key.Matches(keyMsg, keys.DefaultKeyMap.ScaleUp):
		v.toManual()
		v.scale = v.scale.Adjust(ScaleStep)

	case key.Matches(keyMsg, keys.DefaultKeyMap.ScaleDown):
		v.toManual()
		v.scale = v.scale.Adjust(-ScaleStep)

	case key.Matches(keyMsg, keys.DefaultKeyMap.ToggleLoss):
		v.showLoss = !v.showLoss
	}
	return v, nil, MonitorNone
}

// toManual leaves auto mode, starting from the bound currently on screen.
func (v *MonitorView) toManual() {
	if !v.scale.Auto {
		return
	}
	stats, ok := v.series.Stats()
	v.scale.Manual = engine.ClampManualMax(v.scale.Upper(stats, ok))
	v.scale.Auto = false
}

// updateEditing routes keys to the address field. Every change is written
// straight to the target so the sampler picks it up on its next cycle.
func (v MonitorView) updateEditing(msg tea.KeyMsg) (MonitorView, tea.Cmd, MonitorAction) {
	switch {
	case key.Matches(msg, keys.DefaultKeyMap.Enter):
		v.editing = false
		v.input.Blur()
		return v, nil, MonitorAddressCommitted

	case key.Matches(msg, keys.DefaultKeyMap.Escape):
		v.editing = false
		v.input.Blur()
		v.input.SetValue(v.preEdit)
		v.target.SetAddress(v.preEdit)
		return v, nil, MonitorAddressReverted
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if after := v.input.Value(); after != before {
		v.target.SetAddress(after)
	}
	return v, cmd, MonitorNone
}

// View renders the monitor view.
func (v MonitorView) View() string {
	address, lastErr := v.target.Snapshot()
	stats, ok := v.series.Stats()

	labelStyle := v.sty.FormLabel.Width(10)
	addrLine := "  " + labelStyle.Render("Address:")
	if v.editing {
		addrLine += v.input.View()
	} else {
		addrLine += v.sty.FormValue.Render(components.Truncate(address, MaxDisplayLen))
	}

	statsLine := "  " + v.sty.StatsText.Render(engine.StatsLine(stats, ok))
	if v.showLoss {
		statsLine += "  " + v.sty.LossText.Render(v.series.Loss().String())
	}

	errLine := ""
	if lastErr != "" {
		errLine = "  " + v.sty.ErrorText.Render(components.Truncate(lastErr, MaxDisplayLen))
	}

	chartHeight := v.height - 6
	if chartHeight < 4 {
		chartHeight = 4
	}
	chartWidth := v.width - 4
	upper := v.scale.Upper(stats, ok)
	chart := components.RenderChart(v.series.Values(), upper, chartWidth, chartHeight, v.chartTitle())

	parts := []string{
		"",
		addrLine,
		lipgloss.NewStyle().PaddingLeft(2).Render(v.sty.ChartLine.Render(chart)),
		statsLine,
		errLine,
		"  " + v.renderHelp(),
	}
	return strings.Join(parts, "\n")
}

// chartTitle describes the axis mode above the chart.
func (v MonitorView) chartTitle() string {
	if v.scale.Auto {
		return "Latency (ms, auto)"
	}
	return fmt.Sprintf("Latency (ms, max %.0f)", v.scale.Manual)
}

// renderHelp renders a hint line for the current mode.
func (v MonitorView) renderHelp() string {
	helpStyle := v.sty.Dim
	keyStyle := lipgloss.NewStyle().Foreground(v.theme.Base0D).Bold(true)
	if v.editing {
		return helpStyle.Render(fmt.Sprintf("%s keep  %s revert",
			keyStyle.Render("[enter]"), keyStyle.Render("[esc]")))
	}
	return helpStyle.Render(fmt.Sprintf("%s edit address  %s reset",
		keyStyle.Render("[e]"), keyStyle.Render("[r]")))
}
