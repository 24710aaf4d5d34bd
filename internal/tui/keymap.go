package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all key bindings for the TUI. Printable keys belong to the
// focused text field, so every action is bound to a control key.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Next          key.Binding
	Prev          key.Binding
	Submit        key.Binding
	Add           key.Binding
	Remove        key.Binding
	Language      key.Binding
	Logout        key.Binding
	CreateAccount key.Binding
	ToggleSignUp  key.Binding
	Google        key.Binding
	Guest         key.Binding
	Help          key.Binding
	Cancel        key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next field"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Add: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "add line"),
		),
		Remove: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "remove line"),
		),
		Language: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "language"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "logout"),
		),
		CreateAccount: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "create account"),
		),
		ToggleSignUp: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "sign in/sign up"),
		),
		Google: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "google"),
		),
		Guest: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "continue as guest"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// budgetHelp is the help.KeyMap of the budget screen.
type budgetHelp struct {
	keys  KeyMap
	guest bool
}

func (h budgetHelp) ShortHelp() []key.Binding {
	account := h.keys.Logout
	if h.guest {
		account = h.keys.CreateAccount
	}
	return []key.Binding{h.keys.Next, h.keys.Add, h.keys.Remove, h.keys.Language, account, h.keys.Help, h.keys.Quit}
}

func (h budgetHelp) FullHelp() [][]key.Binding {
	account := []key.Binding{h.keys.Language, h.keys.Logout}
	if h.guest {
		account = append(account, h.keys.CreateAccount)
	}
	return [][]key.Binding{
		{h.keys.Up, h.keys.Down, h.keys.Next, h.keys.Prev, h.keys.Submit},
		{h.keys.Add, h.keys.Remove},
		account,
		{h.keys.Help, h.keys.Quit},
	}
}

// loginHelp is the help.KeyMap of the login screen.
type loginHelp struct {
	keys   KeyMap
	google bool
}

func (h loginHelp) ShortHelp() []key.Binding {
	bindings := []key.Binding{h.keys.Submit, h.keys.ToggleSignUp}
	if h.google {
		bindings = append(bindings, h.keys.Google)
	}
	return append(bindings, h.keys.Guest, h.keys.Language, h.keys.Quit)
}

func (h loginHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
