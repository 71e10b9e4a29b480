package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Enter      key.Binding
	Escape     key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Edit       key.Binding
	Reset      key.Binding
	AutoScale  key.Binding
	ScaleUp    key.Binding
	ScaleDown  key.Binding
	ToggleLoss key.Binding
	Settings   key.Binding
	Help       key.Binding
}

// DefaultKeyMap provides the default set of key bindings.
var DefaultKeyMap = KeyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
	Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "left")),
	Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "right")),
	Tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	ShiftTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
	Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Edit:       key.NewBinding(key.WithKeys("e", "/"), key.WithHelp("e", "edit address")),
	Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	AutoScale:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto scale")),
	ScaleUp:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "raise max")),
	ScaleDown:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "lower max")),
	ToggleLoss: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "loss")),
	Settings:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}
