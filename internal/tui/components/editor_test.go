package components

import (
	"testing"

	"github.com/Veraticus/monthly-budget/internal/budget"
	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/Veraticus/monthly-budget/internal/model"
	tuitesting "github.com/Veraticus/monthly-budget/internal/tui/testing"
	"github.com/Veraticus/monthly-budget/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editorKeys() EditorKeys {
	return EditorKeys{
		Up:     key.NewBinding(key.WithKeys("up")),
		Down:   key.NewBinding(key.WithKeys("down")),
		Next:   key.NewBinding(key.WithKeys("tab")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab")),
		Submit: key.NewBinding(key.WithKeys("enter")),
		Add:    key.NewBinding(key.WithKeys("ctrl+n")),
		Remove: key.NewBinding(key.WithKeys("ctrl+r")),
	}
}

func newTestEditor() (EditorModel, *budget.Store) {
	store := budget.NewStore(model.BudgetState{
		Expenses: []model.LineItem{{ID: 1, Category: "Rent", Amount: "800"}},
	})
	return NewEditorModel(store, themes.Default, editorKeys(), i18n.For(i18n.English)), store
}

func send(m EditorModel, msgs ...tea.Msg) EditorModel {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func typed(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, tuitesting.KeyPress(r))
	}
	return msgs
}

func TestEditor_TypingSalaryDispatches(t *testing.T) {
	m, store := newTestEditor()

	send(m, typed("2000")...)

	assert.Equal(t, "2000", store.State().NetSalary)
	assert.InDelta(t, 1200.0, store.Summary().Available, 1e-9)
}

func TestEditor_AddFromSalaryAddsExpense(t *testing.T) {
	m, store := newTestEditor()

	m = send(m, tuitesting.Key(tea.KeyCtrlN))
	kind, id := m.Focused()
	assert.Equal(t, model.KindExpenses, kind)
	assert.Equal(t, 2, id)

	send(m, typed("Gym")...)

	item, ok := budget.Find(store.State().Expenses, 2)
	require.True(t, ok)
	assert.Equal(t, "Gym", item.Category)
}

func TestEditor_EditAmount(t *testing.T) {
	m, store := newTestEditor()

	m = send(m, tuitesting.Key(tea.KeyDown), tuitesting.Key(tea.KeyTab))
	send(m, tea.KeyMsg{Type: tea.KeyBackspace}, tuitesting.KeyPress('5'))

	assert.Equal(t, "805", store.State().Expenses[0].Amount)
}

func TestEditor_RemoveFocusedItem(t *testing.T) {
	m, store := newTestEditor()

	m = send(m, tuitesting.Key(tea.KeyDown), tuitesting.Key(tea.KeyCtrlR))

	assert.Empty(t, store.State().Expenses)
	kind, id := m.Focused()
	assert.Equal(t, model.KindExpenses, kind)
	assert.Equal(t, 0, id)
}

func TestEditor_RemoveIgnoredOnSalary(t *testing.T) {
	m, store := newTestEditor()

	send(m, tuitesting.Key(tea.KeyCtrlR))

	assert.Len(t, store.State().Expenses, 1)
}

func TestEditor_AddButton(t *testing.T) {
	m, store := newTestEditor()

	// salary, rent category, rent amount, add expense, add income
	for range 4 {
		m = send(m, tuitesting.Key(tea.KeyDown))
	}
	m = send(m, tuitesting.Key(tea.KeyEnter))

	require.Len(t, store.State().Incomes, 1)
	assert.Equal(t, 1, store.State().Incomes[0].ID)
	kind, id := m.Focused()
	assert.Equal(t, model.KindIncomes, kind)
	assert.Equal(t, 1, id)
}

func TestEditor_FocusWraps(t *testing.T) {
	m, _ := newTestEditor()

	m = send(m, tuitesting.Key(tea.KeyUp))

	kind, id := m.Focused()
	assert.Equal(t, model.KindIncomes, kind)
	assert.Equal(t, 0, id)
}

func TestEditor_View(t *testing.T) {
	m, _ := newTestEditor()
	m.Resize(80)

	view := tuitesting.StripANSI(m.View())
	assert.True(t, tuitesting.ContainsInOrder(view,
		"Monthly Net Salary (€)",
		"Fixed Monthly Expenses", "Rent", "800", "+ Add Expense",
		"Additional Income", "+ Add Income",
	))

	m.SetTranslations(i18n.For(i18n.Italian))
	view = tuitesting.StripANSI(m.View())
	assert.Contains(t, view, i18n.For(i18n.Italian).FixedExpenses)
}

func TestEditor_TabVisitsEveryField(t *testing.T) {
	m, _ := newTestEditor()

	want := []struct {
		kind model.CollectionKind
		id   int
	}{
		{model.KindExpenses, 1},
		{model.KindExpenses, 1},
		{model.KindExpenses, 0},
		{model.KindIncomes, 0},
		{"", 0},
	}
	for _, w := range want {
		require.NotPanics(t, func() { m = send(m, tuitesting.Key(tea.KeyTab)) })
		kind, id := m.Focused()
		assert.Equal(t, w.kind, kind)
		assert.Equal(t, w.id, id)
	}
}

func TestEditor_ShiftTabFromSalaryReachesAddButton(t *testing.T) {
	m, store := newTestEditor()

	require.NotPanics(t, func() { m = send(m, tuitesting.Key(tea.KeyShiftTab)) })
	kind, id := m.Focused()
	assert.Equal(t, model.KindIncomes, kind)
	assert.Equal(t, 0, id)

	// Typing on a button is ignored.
	m = send(m, typed("9")...)
	assert.Empty(t, store.State().Incomes)
	assert.Contains(t, tuitesting.StripANSI(m.View()), "+ Add Income")
}
