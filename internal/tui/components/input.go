package components

import (
	"github.com/Veraticus/monthly-budget/internal/tui/themes"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
)

func newInput(theme themes.Theme, placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = width
	ti.CharLimit = 64
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.PlaceholderStyle = theme.Blurred
	ti.TextStyle = theme.Normal
	return ti
}

// field renders an input with a focus marker.
func field(theme themes.Theme, ti textinput.Model) string {
	if ti.Focused() {
		return theme.Focused.Render("▸ ") + ti.View()
	}
	return "  " + ti.View()
}
