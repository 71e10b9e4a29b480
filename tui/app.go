package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tonhe/pinggraph/internal/config"
	"github.com/tonhe/pinggraph/internal/engine"
	"github.com/tonhe/pinggraph/tui/components"
	"github.com/tonhe/pinggraph/tui/keys"
	"github.com/tonhe/pinggraph/tui/styles"
	"github.com/tonhe/pinggraph/tui/views"
)

// Version is shown in the header.
const Version = "0.1.0"

// Redraw rates while the terminal is focused and blurred.
const (
	FocusedTick = time.Second / 60
	BlurredTick = time.Second / 5
)

// AppState represents the current screen/view of the application.
type AppState int

const (
	StateMonitor AppState = iota
	StateSettings
)

// TickMsg triggers a periodic UI refresh to pick up new samples.
type TickMsg struct{}

// ConfigReloadedMsg carries a configuration reloaded from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// AppModel is the root Bubble Tea model. It owns the sample series and is
// the only consumer of the feed.
type AppModel struct {
	state      AppState
	theme      styles.Theme
	config     *config.Config
	configPath string
	log        *zap.Logger

	target  *engine.Target
	feed    *engine.Feed
	sampler *engine.Sampler
	series  *engine.Series

	monitor  views.MonitorView
	settings views.SettingsView
	help     views.HelpView

	focused    bool
	lastSample time.Time
	lastOK     bool
	width      int
	height     int
}

// NewAppModel creates a new AppModel. sampler may be nil, in which case
// configuration changes only affect the display.
func NewAppModel(cfg *config.Config, configPath string, target *engine.Target, feed *engine.Feed, sampler *engine.Sampler, log *zap.Logger) AppModel {
	if log == nil {
		log = zap.NewNop()
	}
	theme := styles.Resolve(cfg.Theme)
	series := engine.NewSeries(cfg.MaxHistory)

	monitor := views.NewMonitorView(theme, target, series)
	monitor.SetDisplay(engine.Scale{Auto: cfg.AutoScale, Manual: cfg.ManualMax}, cfg.TrackLoss)

	return AppModel{
		state:      StateMonitor,
		theme:      theme,
		config:     cfg,
		configPath: configPath,
		log:        log,
		target:     target,
		feed:       feed,
		sampler:    sampler,
		series:     series,
		monitor:    monitor,
		help:       views.NewHelpView(theme),
		focused:    true,
	}
}

// Init returns the initial command to start the tick loop.
func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.focused)
}

// tickInterval returns the redraw period for the focus state.
func tickInterval(focused bool) time.Duration {
	if focused {
		return FocusedTick
	}
	return BlurredTick
}

func tickCmd(focused bool) tea.Cmd {
	return tea.Tick(tickInterval(focused), func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// Update handles messages and dispatches to the active view.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Body height = total - 1 (header) - 2 (status bar lines)
		m.monitor.SetSize(msg.Width, msg.Height-3)
		m.settings.SetSize(msg.Width, msg.Height-3)
		m.help.SetSize(msg.Width, msg.Height-3)
		return m, nil

	case TickMsg:
		m.drain()
		return m, tickCmd(m.focused)

	case tea.FocusMsg:
		m.focused = true
		return m, nil

	case tea.BlurMsg:
		m.focused = false
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state == StateMonitor {
		var cmd tea.Cmd
		m.monitor, cmd, _ = m.monitor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// drain moves every pending outcome from the feed into the series.
func (m *AppModel) drain() {
	for _, out := range m.feed.Drain() {
		m.series.Append(out)
		m.lastSample = out.At
		m.lastOK = out.OK()
	}
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.DefaultKeyMap.ForceQuit) {
		return m, tea.Quit
	}

	if m.help.IsVisible() {
		if key.Matches(msg, keys.DefaultKeyMap.Help) || key.Matches(msg, keys.DefaultKeyMap.Escape) {
			m.help.Toggle()
		}
		return m, nil
	}

	switch m.state {
	case StateSettings:
		var cmd tea.Cmd
		var action views.SettingsAction
		m.settings, cmd, action = m.settings.Update(msg)
		switch action {
		case views.SettingsClose:
			m.state = StateMonitor
		case views.SettingsSaved:
			m.log.Info("settings saved", zap.String("path", m.configPath))
			m.applyConfig(m.settings.Config())
			m.state = StateMonitor
		}
		return m, cmd

	case StateMonitor:
		// Plain keys belong to the address field while it is being edited.
		if !m.monitor.Editing() {
			switch {
			case key.Matches(msg, keys.DefaultKeyMap.Quit):
				return m, tea.Quit
			case key.Matches(msg, keys.DefaultKeyMap.Help):
				m.help.Toggle()
				return m, nil
			case key.Matches(msg, keys.DefaultKeyMap.Settings):
				m.settings = views.NewSettingsView(m.theme, m.config, m.configPath)
				m.settings.SetSize(m.width, m.height-3)
				m.state = StateSettings
				return m, nil
			}
		}

		var cmd tea.Cmd
		var action views.MonitorAction
		m.monitor, cmd, action = m.monitor.Update(msg)
		switch action {
		case views.MonitorAddressCommitted:
			m.log.Info("target address changed", zap.String("address", m.target.Address()))
		case views.MonitorAddressReverted:
			m.log.Debug("address edit reverted", zap.String("address", m.target.Address()))
		case views.MonitorReset:
			m.lastSample = time.Time{}
			if m.series.Bound() != m.config.MaxHistory {
				m.series = engine.NewSeries(m.config.MaxHistory)
				m.monitor.SetSeries(m.series)
			}
			m.log.Info("series reset", zap.Int("max_history", m.config.MaxHistory))
		}
		return m, cmd
	}
	return m, nil
}

// applyConfig switches to cfg for the theme, display preferences, and
// sampler pacing. A new history bound applies from the next reset.
func (m *AppModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.config = cfg

	theme := styles.Resolve(cfg.Theme)
	m.theme = theme
	m.monitor.SetTheme(theme)
	m.help.SetTheme(theme)
	m.monitor.SetDisplay(engine.Scale{Auto: cfg.AutoScale, Manual: cfg.ManualMax}, cfg.TrackLoss)

	if m.sampler != nil {
		m.sampler.Apply(engine.PacingFromConfig(cfg), cfg.ProbeTimeout)
	}
}

// View renders the full application UI by composing header, body, and status.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	healthy := m.lastOK && m.target.LastError() == ""
	header := components.RenderHeader(m.theme, m.target.Address(), healthy, m.series.Values(), m.width, Version)

	var body string
	switch {
	case m.help.IsVisible():
		body = m.help.View()
	case m.state == StateSettings:
		body = m.settings.View()
	default:
		body = m.monitor.View()
	}

	interval := engine.PacingFromConfig(m.config).Delay(0)
	if m.sampler != nil {
		info := m.sampler.Info()
		interval = info.Pacing.Delay(info.Failures)
	}
	scale := m.monitor.Scale()
	scaleLabel := "auto"
	if !scale.Auto {
		scaleLabel = components.FormatMillis(scale.Manual)
	}
	statusBar := components.RenderStatusBar(m.theme, components.StatusInfo{
		Interval:   interval,
		LastSample: m.lastSample,
		Scale:      scaleLabel,
		Focused:    m.focused,
	}, m.width)

	// Fill body to the available height between header and status bar
	bodyHeight := m.height - 1 - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	bodyStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		Background(m.theme.Base00).
		Foreground(m.theme.Base05)

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyStyle.Render(body), statusBar)
}
