package views

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/pinggraph/internal/config"
	"github.com/tonhe/pinggraph/tui/keys"
	"github.com/tonhe/pinggraph/tui/styles"
)

// SettingsAction describes what the app should do after a settings update.
type SettingsAction int

const (
	// SettingsNone means continue in the settings view.
	SettingsNone SettingsAction = iota
	// SettingsClose means the user cancelled without saving.
	SettingsClose
	// SettingsSaved means the config was saved; the app should apply changes.
	SettingsSaved
)

// Settings field indices.
const (
	settingsFieldTheme = iota
	settingsFieldSuccess
	settingsFieldFailure
	settingsFieldCap
	settingsFieldTimeout
	settingsFieldHistory
	settingsFieldCount
)

// SettingsView is a full-screen settings editor with a live theme preview.
type SettingsView struct {
	theme  styles.Theme
	sty    *styles.Styles
	config config.Config
	path   string

	themeIndex int // index into styles.ListThemes()
	cursor     int // which setting row is focused

	width  int
	height int

	// inputs holds the text fields, indexed by settings field.
	inputs map[int]*textinput.Model

	err string
}

// NewSettingsView creates a fresh SettingsView populated from cfg. Saving
// writes to path.
func NewSettingsView(theme styles.Theme, cfg *config.Config, path string) SettingsView {
	themeIdx := styles.GetThemeIndex(cfg.Theme)
	if themeIdx < 0 {
		themeIdx = 0
	}

	newInput := func(placeholder, value string) *textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 16
		in.Width = 24
		in.SetValue(value)
		return &in
	}

	return SettingsView{
		theme:      theme,
		sty:        styles.NewStyles(theme),
		config:     *cfg,
		path:       path,
		themeIndex: themeIdx,
		inputs: map[int]*textinput.Model{
			settingsFieldSuccess: newInput("1s", cfg.SuccessInterval.String()),
			settingsFieldFailure: newInput("2s", cfg.FailureInterval.String()),
			settingsFieldCap:     newInput("2s", cfg.BackoffCap.String()),
			settingsFieldTimeout: newInput("2s", cfg.ProbeTimeout.String()),
			settingsFieldHistory: newInput("0 (unbounded)", strconv.Itoa(cfg.MaxHistory)),
		},
	}
}

// Config returns the edited configuration. After SettingsSaved it matches
// what was written to disk.
func (s SettingsView) Config() *config.Config {
	c := s.config
	return &c
}

// SetSize updates the available dimensions for the settings view.
func (s *SettingsView) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// selectedThemeSlug returns the slug of the currently selected theme.
func (s SettingsView) selectedThemeSlug() string {
	themes := styles.ListThemes()
	if s.themeIndex >= 0 && s.themeIndex < len(themes) {
		return themes[s.themeIndex]
	}
	return ""
}

// selectedTheme returns the Theme struct for the currently selected theme.
func (s SettingsView) selectedTheme() styles.Theme {
	t := styles.GetThemeByIndex(s.themeIndex)
	if t != nil {
		return *t
	}
	return styles.DefaultTheme
}

// focusInput blurs all inputs and focuses the one at the cursor position.
func (s *SettingsView) focusInput() {
	for _, in := range s.inputs {
		in.Blur()
	}
	if in, ok := s.inputs[s.cursor]; ok {
		in.Focus()
	}
}

// cycleTheme moves the theme selection by delta and updates the preview.
func (s *SettingsView) cycleTheme(delta int) {
	n := styles.GetThemeCount()
	s.themeIndex = (s.themeIndex + delta + n) % n
	s.theme = s.selectedTheme()
	s.sty = styles.NewStyles(s.theme)
}

// Update handles messages for the settings view.
func (s SettingsView) Update(msg tea.Msg) (SettingsView, tea.Cmd, SettingsAction) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, SettingsNone
	}

	switch {
	case key.Matches(keyMsg, keys.DefaultKeyMap.Escape):
		return s, nil, SettingsClose

	case key.Matches(keyMsg, keys.DefaultKeyMap.Enter):
		return s.save()

	case key.Matches(keyMsg, keys.DefaultKeyMap.Up):
		if s.cursor > 0 {
			s.cursor--
			s.focusInput()
		}
		return s, nil, SettingsNone

	case key.Matches(keyMsg, keys.DefaultKeyMap.Down):
		if s.cursor < settingsFieldCount-1 {
			s.cursor++
			s.focusInput()
		}
		return s, nil, SettingsNone

	case key.Matches(keyMsg, keys.DefaultKeyMap.Tab):
		s.cursor = (s.cursor + 1) % settingsFieldCount
		s.focusInput()
		return s, nil, SettingsNone

	case key.Matches(keyMsg, keys.DefaultKeyMap.ShiftTab):
		s.cursor = (s.cursor - 1 + settingsFieldCount) % settingsFieldCount
		s.focusInput()
		return s, nil, SettingsNone

	case s.cursor == settingsFieldTheme && key.Matches(keyMsg, keys.DefaultKeyMap.Left):
		s.cycleTheme(-1)
		return s, nil, SettingsNone

	case s.cursor == settingsFieldTheme && key.Matches(keyMsg, keys.DefaultKeyMap.Right):
		s.cycleTheme(1)
		return s, nil, SettingsNone
	}

	in, ok := s.inputs[s.cursor]
	if !ok {
		return s, nil, SettingsNone
	}
	updated, cmd := in.Update(keyMsg)
	*in = updated
	return s, cmd, SettingsNone
}

// parseField reads a duration field, falling back to def when empty.
func (s SettingsView) parseField(field int, label, def string) (time.Duration, error) {
	v := strings.TrimSpace(s.inputs[field].Value())
	if v == "" {
		v = def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", label, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", label)
	}
	return d, nil
}

// validate parses every field into a copy of the config.
func (s SettingsView) validate() (config.Config, error) {
	c := s.config

	success, err := s.parseField(settingsFieldSuccess, "success interval", "1s")
	if err != nil {
		return c, err
	}
	failure, err := s.parseField(settingsFieldFailure, "failure interval", "2s")
	if err != nil {
		return c, err
	}
	if failure < success {
		return c, fmt.Errorf("failure interval must be at least the success interval (%s)", success)
	}
	backoffCap, err := s.parseField(settingsFieldCap, "backoff cap", failure.String())
	if err != nil {
		return c, err
	}
	if backoffCap < failure {
		return c, fmt.Errorf("backoff cap must be at least the failure interval (%s)", failure)
	}
	timeout, err := s.parseField(settingsFieldTimeout, "probe timeout", "2s")
	if err != nil {
		return c, err
	}
	if timeout < config.MinProbeTimeout || timeout > config.MaxProbeTimeout {
		return c, fmt.Errorf("probe timeout must be between %s and %s", config.MinProbeTimeout, config.MaxProbeTimeout)
	}

	historyStr := strings.TrimSpace(s.inputs[settingsFieldHistory].Value())
	if historyStr == "" {
		historyStr = "0"
	}
	maxHistory, err := strconv.Atoi(historyStr)
	if err != nil || maxHistory < 0 {
		return c, fmt.Errorf("max history must be 0 or a positive integer")
	}

	c.Theme = s.selectedThemeSlug()
	c.SuccessInterval = success
	c.FailureInterval = failure
	c.BackoffCap = backoffCap
	c.ProbeTimeout = timeout
	c.MaxHistory = maxHistory
	return c, nil
}

// save validates and persists the config to disk.
func (s SettingsView) save() (SettingsView, tea.Cmd, SettingsAction) {
	c, err := s.validate()
	if err != nil {
		s.err = err.Error()
		return s, nil, SettingsNone
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		s.err = fmt.Sprintf("Failed to create directories: %v", err)
		return s, nil, SettingsNone
	}
	if err := config.SaveConfig(&c, s.path); err != nil {
		s.err = fmt.Sprintf("Failed to save config: %v", err)
		return s, nil, SettingsNone
	}

	s.config = c
	s.err = ""
	return s, nil, SettingsSaved
}

// View renders the settings screen.
func (s SettingsView) View() string {
	titleStyle := s.sty.ModalTitle
	labelStyle := s.sty.FormLabel
	activeLabelStyle := s.sty.FormLabelActive
	valStyle := s.sty.FormValue

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Settings") + "\n")
	b.WriteString("\n")

	if s.err != "" {
		b.WriteString("  " + s.sty.ErrorText.Render(s.err) + "\n\n")
	}

	themeSlug := s.selectedThemeSlug()
	themeName := themeSlug
	if t := styles.GetThemeByName(themeSlug); t != nil {
		themeName = t.Name
	}
	themeDisplay := fmt.Sprintf("< %s >  (%d/%d)", themeName, s.themeIndex+1, styles.GetThemeCount())

	labels := []string{
		"Theme",
		"Success Interval",
		"Failure Interval",
		"Backoff Cap",
		"Probe Timeout",
		"Max History",
	}

	for i, label := range labels {
		indicator := "  "
		lbl := labelStyle
		if i == s.cursor {
			indicator = activeLabelStyle.Render("> ")
			lbl = activeLabelStyle
		}

		value := valStyle.Render(themeDisplay)
		if in, ok := s.inputs[i]; ok {
			value = in.View()
		}
		b.WriteString(fmt.Sprintf("  %s%s%s\n", indicator, lbl.Render(padRight(label+":", 20)), value))
	}

	b.WriteString("\n")
	b.WriteString(s.renderThemePreview())

	b.WriteString("\n")
	b.WriteString("  " + s.renderHelp() + "\n")

	return b.String()
}

// renderThemePreview renders a small preview panel showing the selected theme's colors.
func (s SettingsView) renderThemePreview() string {
	preview := s.selectedTheme()

	sepStyle := lipgloss.NewStyle().Foreground(preview.Base03)
	titleStyle := lipgloss.NewStyle().Foreground(preview.Base0D).Bold(true)

	previewWidth := 56
	if s.width > 0 && s.width-6 < previewWidth {
		previewWidth = s.width - 6
	}
	if previewWidth < 30 {
		previewWidth = 30
	}

	var b strings.Builder

	label := " Theme Preview "
	dashCount := max(2, previewWidth-len(label))
	leftDash := dashCount / 2
	rightDash := dashCount - leftDash
	b.WriteString("  " + sepStyle.Render(strings.Repeat("-", leftDash)) + titleStyle.Render(label) + sepStyle.Render(strings.Repeat("-", rightDash)) + "\n")

	headerBg := lipgloss.NewStyle().
		Background(preview.Base01).
		Foreground(preview.Base05).
		Bold(true).
		Padding(0, 1)
	headerTitle := lipgloss.NewStyle().
		Background(preview.Base01).
		Foreground(preview.Base0D).
		Bold(true)
	b.WriteString("  " + headerBg.Render(headerTitle.Render("pinggraph")+" - 8.8.8.8"+strings.Repeat(" ", max(0, previewWidth-22))) + "\n")

	chartStyle := lipgloss.NewStyle().Foreground(preview.Base0C)
	b.WriteString("  " + chartStyle.Render("  ▂▃▃▂▅█▃▂  ▂▃▂▂▃▄▃▂") + "\n")

	statsStyle := lipgloss.NewStyle().Foreground(preview.Base05)
	lossStyle := lipgloss.NewStyle().Foreground(preview.Base0A)
	errStyle := lipgloss.NewStyle().Foreground(preview.Base08)
	b.WriteString("  " + statsStyle.Render("  12.40ms best, 48.10ms worst, 19.73ms average") + "\n")
	b.WriteString("  " + lossStyle.Render("  Loss: 10.00% (2/20)") + "\n")
	b.WriteString("  " + errStyle.Render("  ping failed: timed out waiting for echo reply") + "\n")

	b.WriteString("\n")
	swatchLabel := lipgloss.NewStyle().Foreground(preview.Base04)
	b.WriteString("  " + swatchLabel.Render("Colors: "))

	colorPairs := []struct {
		name  string
		color lipgloss.Color
	}{
		{"red", preview.Base08},
		{"org", preview.Base09},
		{"yel", preview.Base0A},
		{"grn", preview.Base0B},
		{"cyn", preview.Base0C},
		{"blu", preview.Base0D},
		{"mag", preview.Base0E},
	}
	for _, cp := range colorPairs {
		b.WriteString(lipgloss.NewStyle().Foreground(cp.color).Render(cp.name) + " ")
	}
	b.WriteString("\n")

	b.WriteString("  " + sepStyle.Render(strings.Repeat("-", previewWidth)) + "\n")

	return b.String()
}

// renderHelp renders the help line for the settings view.
func (s SettingsView) renderHelp() string {
	helpStyle := s.sty.Dim
	keyStyle := s.sty.FooterKey

	if s.cursor == settingsFieldTheme {
		return helpStyle.Render(fmt.Sprintf(
			"%s/%s cycle theme  %s/%s navigate  %s save  %s cancel",
			keyStyle.Render("[left]"),
			keyStyle.Render("[right]"),
			keyStyle.Render("[up]"),
			keyStyle.Render("[down]"),
			keyStyle.Render("[enter]"),
			keyStyle.Render("[esc]"),
		))
	}
	return helpStyle.Render(fmt.Sprintf(
		"%s/%s navigate  %s save  %s cancel",
		keyStyle.Render("[up]"),
		keyStyle.Render("[down]"),
		keyStyle.Render("[enter]"),
		keyStyle.Render("[esc]"),
	))
}
