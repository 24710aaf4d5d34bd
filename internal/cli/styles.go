// Package cli provides styled terminal output for the budget commands.
package cli

import (
	"github.com/Veraticus/monthly-budget/internal/finance"
	"github.com/charmbracelet/lipgloss"
)

// Palette shared by every command. Mirrors the TUI's default theme.
var (
	accent  = lipgloss.Color("#7C6FF0")
	healthy = lipgloss.Color("#4ECDC4")
	caution = lipgloss.Color("#FFE66D")
	danger  = lipgloss.Color("#FF6B6B")
	advice  = lipgloss.Color("#95E1D3")
	dim     = lipgloss.Color("#6B6B6B")
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1)
	SuccessStyle = lipgloss.NewStyle().Foreground(healthy)
	WarningStyle = lipgloss.NewStyle().Foreground(caution)
	ErrorStyle   = lipgloss.NewStyle().Foreground(danger)
	InfoStyle    = lipgloss.NewStyle().Foreground(advice)
	SubtleStyle  = lipgloss.NewStyle().Foreground(dim)
	BoldStyle    = lipgloss.NewStyle().Bold(true)

	// LabelStyle pads labels so amounts line up.
	LabelStyle = lipgloss.NewStyle().Width(34)

	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
)

const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	MoneyIcon   = "💶"
)

func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

func FormatTitle(title string) string {
	return TitleStyle.Render(MoneyIcon + " " + title)
}

// FormatPrompt renders an input label followed by ": ".
func FormatPrompt(prompt string) string {
	return promptStyle.Render(prompt + ": ")
}

// TierStyle colors the expense percentage by tier.
func TierStyle(tier finance.Tier) lipgloss.Style {
	switch tier {
	case finance.TierHigh:
		return ErrorStyle
	case finance.TierMedium:
		return WarningStyle
	default:
		return SuccessStyle
	}
}

// AvailableStyle colors the available amount by sign.
func AvailableStyle(available float64) lipgloss.Style {
	if available < 0 {
		return ErrorStyle
	}
	return SuccessStyle
}
