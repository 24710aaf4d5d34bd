// Package testing provides helpers for driving bubbletea models in tests.
package testing

import (
	"regexp"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes all ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// ContainsInOrder checks if the output contains all specified strings in order.
func ContainsInOrder(output string, expected ...string) bool {
	lastIndex := 0
	for _, exp := range expected {
		index := strings.Index(output[lastIndex:], exp)
		if index == -1 {
			return false
		}
		lastIndex += index + len(exp)
	}
	return true
}

// KeyPress creates a key message for a printable rune.
func KeyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// Key creates a key message of the given type, e.g. tea.KeyEnter or tea.KeyCtrlN.
func Key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// Driver feeds messages to a model and runs the commands it returns.
type Driver struct {
	Model   tea.Model
	Timeout time.Duration
	Quit    bool
}

// NewDriver wraps m.
func NewDriver(m tea.Model) *Driver {
	return &Driver{Model: m, Timeout: 2 * time.Second}
}

// Send delivers msgs in order, draining every command they produce.
func (d *Driver) Send(msgs ...tea.Msg) *Driver {
	for _, msg := range msgs {
		var cmd tea.Cmd
		d.Model, cmd = d.Model.Update(msg)
		d.run(cmd)
	}
	return d
}

// Type sends text one rune at a time.
func (d *Driver) Type(text string) *Driver {
	for _, r := range text {
		d.Send(KeyPress(r))
	}
	return d
}

// Press sends key messages of the given types.
func (d *Driver) Press(types ...tea.KeyType) *Driver {
	for _, t := range types {
		d.Send(Key(t))
	}
	return d
}

// View returns the rendered view without ANSI codes.
func (d *Driver) View() string {
	return StripANSI(d.Model.View())
}

func (d *Driver) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}

	result := make(chan tea.Msg, 1)
	go func() { result <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-result:
	case <-time.After(d.Timeout):
		return
	}

	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			d.run(c)
		}
	case tea.QuitMsg:
		d.Quit = true
	default:
		d.Send(msg)
	}
}
