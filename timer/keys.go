package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	reset      key.Binding
	sessionUp  key.Binding
	sessionDn  key.Binding
	breakUp    key.Binding
	breakDn    key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "start/stop"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	sessionUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "session +1m"),
	),
	sessionDn: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "session -1m"),
	),
	breakUp: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "break +1m"),
	),
	breakDn: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "break -1m"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// runningHelp omits the length keys because they are ignored while the
// countdown runs.
func (k keymap) runningHelp() []key.Binding {
	return []key.Binding{k.togglePlay, k.reset, k.quit}
}

func (k keymap) pausedHelp() []key.Binding {
	return []key.Binding{
		k.togglePlay,
		k.reset,
		k.sessionUp,
		k.sessionDn,
		k.breakUp,
		k.breakDn,
		k.quit,
	}
}
