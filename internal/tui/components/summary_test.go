package components

import (
	"testing"

	"github.com/Veraticus/monthly-budget/internal/finance"
	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/Veraticus/monthly-budget/internal/model"
	tuitesting "github.com/Veraticus/monthly-budget/internal/tui/testing"
	"github.com/Veraticus/monthly-budget/internal/tui/themes"
	"github.com/stretchr/testify/assert"
)

func TestSummary_View(t *testing.T) {
	en := i18n.For(i18n.English)
	m := NewSummaryModel(themes.Default, en)
	m.Resize(90)

	m.SetSummary(finance.Derive(model.BudgetState{
		NetSalary: "2000",
		Expenses:  []model.LineItem{{ID: 1, Amount: "800"}},
		Incomes:   []model.LineItem{{ID: 1, Amount: "200"}},
	}), en)

	view := tuitesting.StripANSI(m.View())
	assert.True(t, tuitesting.ContainsInOrder(view,
		"Total Income:", "€2200.00",
		"Total Fixed Expenses:", "€800.00",
		"36.4%",
		"€1400.00",
		"Consider saving 20% (€280.00)",
		"Percentage Guide",
	))
}

func TestSummary_NoIncome(t *testing.T) {
	en := i18n.For(i18n.English)
	m := NewSummaryModel(themes.Default, en)
	m.Resize(90)

	m.SetSummary(finance.Derive(model.BudgetState{
		Expenses: []model.LineItem{{ID: 1, Amount: "500"}},
	}), en)

	view := tuitesting.StripANSI(m.View())
	assert.NotContains(t, view, en.PercentageLabel)
	assert.NotContains(t, view, "Consider saving")
	assert.NotContains(t, view, en.Warning)
	assert.Contains(t, view, "€-500.00")
}

func TestSummary_Deficit(t *testing.T) {
	en := i18n.For(i18n.English)
	m := NewSummaryModel(themes.Default, en)
	m.Resize(90)

	m.SetSummary(finance.Derive(model.BudgetState{
		NetSalary: "1000",
		Expenses:  []model.LineItem{{ID: 1, Amount: "1500"}},
	}), en)

	view := tuitesting.StripANSI(m.View())
	assert.Contains(t, view, en.Warning)
	assert.Contains(t, view, "You need to reduce expenses by €500.00")
}
