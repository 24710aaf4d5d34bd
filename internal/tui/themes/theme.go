package themes

import (
	"github.com/Veraticus/monthly-budget/internal/finance"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Bold        lipgloss.Style
	Label       lipgloss.Style
	Focused     lipgloss.Style
	Blurred     lipgloss.Style
	Button      lipgloss.Style
	ButtonFocus lipgloss.Style
	Banner      lipgloss.Style
	RoundedBox  lipgloss.Style
	StatusError lipgloss.Style
	StatusInfo  lipgloss.Style
	Primary     lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	Success     lipgloss.Color
	Warning     lipgloss.Color
	Error       lipgloss.Color
}

func build(primary, fg, muted, border, success, warning, errColor, info lipgloss.Color) Theme {
	return Theme{
		Primary: primary,
		Muted:   muted,
		Border:  border,
		Success: success,
		Warning: warning,
		Error:   errColor,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg).
			MarginTop(1),
		Focused: lipgloss.NewStyle().
			Foreground(primary),
		Blurred: lipgloss.NewStyle().
			Foreground(muted),
		Button: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		ButtonFocus: lipgloss.NewStyle().
			Foreground(fg).
			Background(primary).
			Bold(true).
			Padding(0, 1),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(warning).
			Padding(0, 1),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
		StatusError: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(info),
	}
}

// Default is the default theme.
var Default = build(
	lipgloss.Color("#7c3aed"),
	lipgloss.Color("#fafafa"),
	lipgloss.Color("#737373"),
	lipgloss.Color("#404040"),
	lipgloss.Color("#10b981"),
	lipgloss.Color("#f59e0b"),
	lipgloss.Color("#ef4444"),
	lipgloss.Color("#3b82f6"),
)

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = build(
	lipgloss.Color("#cba6f7"),
	lipgloss.Color("#cdd6f4"),
	lipgloss.Color("#6c7086"),
	lipgloss.Color("#45475a"),
	lipgloss.Color("#a6e3a1"),
	lipgloss.Color("#f9e2af"),
	lipgloss.Color("#f38ba8"),
	lipgloss.Color("#89dceb"),
)

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// TierColor returns the color of an expense tier.
func (t Theme) TierColor(tier finance.Tier) lipgloss.Color {
	switch tier {
	case finance.TierHigh:
		return t.Error
	case finance.TierMedium:
		return t.Warning
	default:
		return t.Success
	}
}

// Tier returns the text style of an expense tier.
func (t Theme) Tier(tier finance.Tier) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.TierColor(tier))
}

// Amount styles an available amount by sign.
func (t Theme) Amount(v float64) lipgloss.Style {
	if v < 0 {
		return lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(t.Success)
}
