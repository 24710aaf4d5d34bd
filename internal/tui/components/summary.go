package components

import (
	"strings"

	"github.com/Veraticus/monthly-budget/internal/finance"
	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/Veraticus/monthly-budget/internal/tui/themes"
	"github.com/Veraticus/monthly-budget/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// SummaryModel shows the derived figures of the budget.
type SummaryModel struct {
	theme    themes.Theme
	t        i18n.Translations
	view     viewmodel.SummaryView
	progress progress.Model
	width    int
}

// NewSummaryModel creates the summary panel.
func NewSummaryModel(theme themes.Theme, t i18n.Translations) SummaryModel {
	return SummaryModel{
		theme:    theme,
		t:        t,
		progress: progress.New(progress.WithSolidFill(string(theme.Success)), progress.WithoutPercentage()),
		width:    40,
	}
}

// SetSummary replaces the figures shown.
func (m *SummaryModel) SetSummary(s finance.Summary, t i18n.Translations) {
	m.t = t
	m.view = viewmodel.NewSummaryView(s, t)
	m.progress.FullColor = string(m.theme.TierColor(s.Tier))
}

// View returns the formatted figures.
func (m SummaryModel) View() string {
	v := m.view
	var lines []string

	lines = append(lines, m.row(v.TotalIncome.Label, m.theme.Bold.Render(v.TotalIncome.Value)))
	if v.Breakdown != "" {
		lines = append(lines, m.theme.Subtitle.Render(v.Breakdown))
	}
	lines = append(lines, m.row(v.TotalExpenses.Label, m.theme.Bold.Render(v.TotalExpenses.Value)))

	if v.HasIncome {
		lines = append(lines,
			"",
			m.row(v.Percentage.Label, m.theme.Tier(v.Tier).Render(v.Percentage.Value)),
			m.progress.ViewAs(v.Progress),
		)
	}

	lines = append(lines, "", m.row(v.Available.Label, m.theme.Amount(v.AvailableRaw).Render(v.Available.Value)))

	if len(v.Suggestions) > 0 {
		lines = append(lines, "", m.theme.Bold.Render(viewmodel.SuggestionsTitle(m.t)))
		for _, s := range v.Suggestions {
			lines = append(lines, m.theme.Normal.Render("• "+s))
		}
	}
	if v.Warning != "" {
		lines = append(lines,
			"",
			m.theme.StatusError.Render("⚠️ "+v.Warning),
			m.theme.Normal.Render(v.WarningDetail),
		)
	}

	lines = append(lines, "", m.theme.Bold.Render(v.GuideTitle))
	for _, g := range v.Guide {
		lines = append(lines, m.theme.Tier(g.Tier).Render("● ")+m.theme.Normal.Render(g.Text))
	}

	return m.theme.RoundedBox.Width(m.width).Render(strings.Join(lines, "\n"))
}

func (m SummaryModel) row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.theme.Normal.Render(label), " ", value)
}

// Resize sets the panel width.
func (m *SummaryModel) Resize(width int) {
	m.width = width
	m.progress.Width = max(width-8, 10)
}
