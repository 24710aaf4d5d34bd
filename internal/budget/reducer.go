package budget

import "github.com/Veraticus/monthly-budget/internal/model"

// Slot names one of the independently persisted parts of the state.
type Slot string

const (
	SlotNone      Slot = ""
	SlotNetSalary Slot = "netSalary"
	SlotExpenses  Slot = "expenses"
	SlotIncomes   Slot = "incomes"
)

func slotFor(kind model.CollectionKind) Slot {
	switch kind {
	case model.KindExpenses:
		return SlotExpenses
	case model.KindIncomes:
		return SlotIncomes
	default:
		return SlotNone
	}
}

// Action is a user edit applied by Reduce.
type Action interface {
	isAction()
}

// SetSalary replaces the raw net salary text.
type SetSalary struct {
	Value string
}

// AddItem appends a blank item to a collection.
type AddItem struct {
	Kind model.CollectionKind
}

// RemoveItem drops an item from a collection.
type RemoveItem struct {
	Kind model.CollectionKind
	ID   int
}

// UpdateItem edits one field of an item.
type UpdateItem struct {
	Kind  model.CollectionKind
	Field model.ItemField
	Value string
	ID    int
}

func (SetSalary) isAction()  {}
func (AddItem) isAction()    {}
func (RemoveItem) isAction() {}
func (UpdateItem) isAction() {}

// Reduce applies action to prior and returns the next state along with the
// slot it touched. prior is never modified. Remove and update report their
// slot even when no item matched; an action naming an unknown collection
// returns prior and SlotNone.
func Reduce(prior model.BudgetState, action Action) (model.BudgetState, Slot) {
	switch a := action.(type) {
	case SetSalary:
		next := prior
		next.NetSalary = a.Value
		return next, SlotNetSalary
	case AddItem:
		if !a.Kind.Valid() {
			return prior, SlotNone
		}
		return prior.WithItems(a.Kind, Add(prior.Items(a.Kind))), slotFor(a.Kind)
	case RemoveItem:
		if !a.Kind.Valid() {
			return prior, SlotNone
		}
		return prior.WithItems(a.Kind, Remove(prior.Items(a.Kind), a.ID)), slotFor(a.Kind)
	case UpdateItem:
		if !a.Kind.Valid() {
			return prior, SlotNone
		}
		items := Update(prior.Items(a.Kind), a.ID, a.Field, a.Value)
		return prior.WithItems(a.Kind, items), slotFor(a.Kind)
	default:
		return prior, SlotNone
	}
}
