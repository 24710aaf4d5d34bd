package model

// BudgetState is the root of everything the user edits: the salary and the
// two line-item collections. Derived values are never stored here.
type BudgetState struct {
	NetSalary string     `json:"netSalary"`
	Expenses  []LineItem `json:"expenses"`
	Incomes   []LineItem `json:"incomes"`
}

// Items returns the collection of the given kind.
func (s BudgetState) Items(kind CollectionKind) []LineItem {
	if kind == KindIncomes {
		return s.Incomes
	}
	return s.Expenses
}

// WithItems returns a copy of the state with the collection of kind replaced.
func (s BudgetState) WithItems(kind CollectionKind, items []LineItem) BudgetState {
	switch kind {
	case KindExpenses:
		s.Expenses = items
	case KindIncomes:
		s.Incomes = items
	}
	return s
}

// Clone returns a deep copy of the state.
func (s BudgetState) Clone() BudgetState {
	return BudgetState{
		NetSalary: s.NetSalary,
		Expenses:  cloneItems(s.Expenses),
		Incomes:   cloneItems(s.Incomes),
	}
}

func cloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
