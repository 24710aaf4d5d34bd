package components

import (
	"github.com/Veraticus/monthly-budget/internal/budget"
	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/Veraticus/monthly-budget/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dispatcher applies edits to the budget state.
type Dispatcher interface {
	State() model.BudgetState
	Dispatch(action budget.Action) budget.Change
}

// EditorKeys are the bindings the editor reacts to.
type EditorKeys struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Add    key.Binding
	Remove key.Binding
}

const fieldAdd model.ItemField = "add"

// slot identifies one focusable element of the editor. The salary has an
// empty kind; add buttons use fieldAdd.
type slot struct {
	kind  model.CollectionKind
	field model.ItemField
	id    int
}

type editorField struct {
	input textinput.Model
	slot  slot
}

// EditorModel edits the salary and both line-item collections. Every
// change is dispatched to the store, which stays the source of truth.
type EditorModel struct {
	store  Dispatcher
	theme  themes.Theme
	keys   EditorKeys
	t      i18n.Translations
	fields []editorField
	focus  int
	width  int
}

// NewEditorModel builds the editor from the current store state.
func NewEditorModel(store Dispatcher, theme themes.Theme, keys EditorKeys, t i18n.Translations) EditorModel {
	m := EditorModel{
		store: store,
		theme: theme,
		keys:  keys,
		t:     t,
		width: 60,
	}
	m.rebuild(store.State(), slot{field: model.FieldAmount})
	return m
}

// SetTranslations switches placeholders and labels.
func (m *EditorModel) SetTranslations(t i18n.Translations) {
	m.t = t
	m.rebuild(m.store.State(), m.current())
}

// Resize sets the available width.
func (m *EditorModel) Resize(width int) {
	m.width = width
}

func (m EditorModel) current() slot {
	if m.focus < len(m.fields) {
		return m.fields[m.focus].slot
	}
	return slot{field: model.FieldAmount}
}

// Focused returns the collection and item id under focus. The id is zero
// for the salary and for add buttons.
func (m EditorModel) Focused() (model.CollectionKind, int) {
	s := m.current()
	if s.field == fieldAdd {
		return s.kind, 0
	}
	return s.kind, s.id
}

// rebuild recreates the fields from state and focuses want, or the field
// nearest the previous focus when want no longer exists.
func (m *EditorModel) rebuild(state model.BudgetState, want slot) {
	amountWidth := 10
	categoryWidth := 28

	salary := newInput(m.theme, m.t.SalaryPlaceholder, 16)
	salary.SetValue(state.NetSalary)
	fields := []editorField{{slot: slot{field: model.FieldAmount}, input: salary}}

	for _, kind := range model.Kinds {
		placeholder := m.t.ExpenseCategoryPlaceholder
		if kind == model.KindIncomes {
			placeholder = m.t.IncomeCategoryPlaceholder
		}
		for _, item := range state.Items(kind) {
			category := newInput(m.theme, placeholder, categoryWidth)
			category.SetValue(item.Category)
			amount := newInput(m.theme, m.t.AmountPlaceholder, amountWidth)
			amount.SetValue(item.Amount)
			fields = append(fields,
				editorField{slot: slot{kind: kind, id: item.ID, field: model.FieldCategory}, input: category},
				editorField{slot: slot{kind: kind, id: item.ID, field: model.FieldAmount}, input: amount},
			)
		}
		fields = append(fields, editorField{slot: slot{kind: kind, field: fieldAdd}})
	}

	previous := m.focus
	m.fields = fields
	m.focus = -1
	for i, f := range fields {
		if f.slot == want {
			m.focus = i
			break
		}
	}
	if m.focus < 0 {
		m.focus = min(previous, len(fields)-1)
	}
	m.setFocus(m.focus)
}

func (m *EditorModel) setFocus(i int) {
	m.focus = (i + len(m.fields)) % len(m.fields)
	for j := range m.fields {
		// Add buttons carry no input to focus.
		if m.fields[j].slot.field == fieldAdd {
			continue
		}
		if j == m.focus {
			m.fields[j].input.Focus()
		} else {
			m.fields[j].input.Blur()
		}
	}
}

func (m *EditorModel) add(kind model.CollectionKind) {
	change := m.store.Dispatch(budget.AddItem{Kind: kind})
	items := change.Next.Items(kind)
	want := slot{kind: kind, field: fieldAdd}
	if len(items) > 0 {
		want = slot{kind: kind, id: items[len(items)-1].ID, field: model.FieldCategory}
	}
	m.rebuild(change.Next, want)
}

func (m *EditorModel) remove(kind model.CollectionKind, id int) {
	change := m.store.Dispatch(budget.RemoveItem{Kind: kind, ID: id})
	m.rebuild(change.Next, slot{})
}

// Update handles navigation and edits.
func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	current := m.current()

	switch {
	case key.Matches(keyMsg, m.keys.Up, m.keys.Prev):
		m.setFocus(m.focus - 1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Down, m.keys.Next):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Add):
		kind := current.kind
		if kind == "" {
			kind = model.KindExpenses
		}
		m.add(kind)
		return m, nil
	case key.Matches(keyMsg, m.keys.Remove):
		if current.kind != "" && current.field != fieldAdd {
			m.remove(current.kind, current.id)
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Submit):
		if current.field == fieldAdd {
			m.add(current.kind)
			return m, nil
		}
		m.setFocus(m.focus + 1)
		return m, nil
	}

	if current.field == fieldAdd {
		return m, nil
	}

	f := &m.fields[m.focus]
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if value := f.input.Value(); value != before {
		if current.kind == "" {
			m.store.Dispatch(budget.SetSalary{Value: value})
		} else {
			m.store.Dispatch(budget.UpdateItem{Kind: current.kind, ID: current.id, Field: current.field, Value: value})
		}
	}
	return m, cmd
}

// View renders the salary and both collections.
func (m EditorModel) View() string {
	lines := []string{
		m.theme.Bold.Render("💰 " + m.t.NetSalary),
		field(m.theme, m.fields[0].input),
	}

	i := 1
	for _, kind := range model.Kinds {
		title, addLabel := m.t.FixedExpenses, m.t.AddExpense
		if kind == model.KindIncomes {
			title, addLabel = m.t.AdditionalIncome, m.t.AddIncome
		}
		lines = append(lines, m.theme.Label.Render(title))

		for i < len(m.fields) && m.fields[i].slot.field != fieldAdd {
			row := lipgloss.JoinHorizontal(lipgloss.Top,
				field(m.theme, m.fields[i].input),
				" ",
				field(m.theme, m.fields[i+1].input),
			)
			lines = append(lines, row)
			i += 2
		}

		button := m.theme.Button
		if i == m.focus {
			button = m.theme.ButtonFocus
		}
		lines = append(lines, button.Render("+ "+addLabel))
		i++
	}

	return lipgloss.NewStyle().Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
