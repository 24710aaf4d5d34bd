// Package viewmodel turns derived budget figures into display-ready text.
package viewmodel

import (
	"fmt"

	"github.com/Veraticus/monthly-budget/internal/finance"
	"github.com/Veraticus/monthly-budget/internal/i18n"
)

// Line is a label and its formatted value.
type Line struct {
	Label string
	Value string
}

// GuideLine is one row of the percentage guide.
type GuideLine struct {
	Text string
	Tier finance.Tier
}

// SummaryView is everything the summary panel prints.
type SummaryView struct {
	Available     Line
	TotalIncome   Line
	TotalExpenses Line
	// Breakdown is empty unless there is additional income.
	Breakdown string
	// Percentage is empty when there is no income.
	Percentage    Line
	Warning       string
	WarningDetail string
	GuideTitle    string
	Suggestions   []string
	Guide         []GuideLine
	Progress      float64
	AvailableRaw  float64
	Tier          finance.Tier
	HasIncome     bool
}

// NewSummaryView formats s in the language of t.
func NewSummaryView(s finance.Summary, t i18n.Translations) SummaryView {
	v := SummaryView{
		TotalIncome:   Line{Label: t.TotalIncome, Value: finance.FormatCurrency(s.TotalIncome)},
		TotalExpenses: Line{Label: t.TotalExpenses, Value: finance.FormatCurrency(s.TotalExpenses)},
		Available:     Line{Label: t.AvailableMoney, Value: finance.FormatCurrency(s.Available)},
		AvailableRaw:  s.Available,
		Tier:          s.Tier,
		HasIncome:     s.HasIncome(),
		Progress:      s.ProgressPercent / 100,
		GuideTitle:    t.GuideTitle,
		Guide: []GuideLine{
			{Text: t.GuideGood, Tier: finance.TierLow},
			{Text: t.GuideWarning, Tier: finance.TierMedium},
			{Text: t.GuideBad, Tier: finance.TierHigh},
		},
	}

	if s.HasAdditionalIncome() {
		v.Breakdown = fmt.Sprintf("%s: %s | %s: %s",
			t.Salary, finance.FormatCurrency(s.NetSalary),
			t.AdditionalIncomeLabel, finance.FormatCurrency(s.TotalIncomes))
	}
	if v.HasIncome {
		v.Percentage = Line{Label: t.PercentageLabel, Value: finance.FormatPercent(s.ExpensePercentage)}
	}

	switch s.Advice.Kind {
	case finance.AdviceSave:
		v.Suggestions = []string{
			fmt.Sprintf("%s (%s)", t.SuggestSaving, finance.FormatCurrency(s.Advice.Savings)),
			t.SuggestEmergency,
			fmt.Sprintf("%s %s", finance.FormatCurrency(s.Advice.Discretionary), t.SuggestRemaining),
		}
	case finance.AdviceReduce:
		v.Warning = t.Warning
		v.WarningDetail = fmt.Sprintf("%s %s", t.WarningMessage, finance.FormatCurrency(s.Advice.Shortfall))
	}

	return v
}

// SuggestionsTitle returns the heading shown above suggestions.
func SuggestionsTitle(t i18n.Translations) string {
	return t.Suggestions
}
