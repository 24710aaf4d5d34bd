package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/Veraticus/monthly-budget/internal/persist"
)

// ErrDuplicateID marks a stored collection holding the same id twice.
var ErrDuplicateID = errors.New("duplicate item id")

// DefaultState returns the starting budget for lang: no salary and the
// language's default categories with empty amounts, numbered from 1.
func DefaultState(lang i18n.Language) model.BudgetState {
	t := i18n.For(lang)
	return model.BudgetState{
		Expenses: defaultItems(t.DefaultExpenses),
		Incomes:  defaultItems(t.DefaultIncomes),
	}
}

func defaultItems(categories []string) []model.LineItem {
	items := make([]model.LineItem, len(categories))
	for i, category := range categories {
		items[i] = model.LineItem{ID: i + 1, Category: category}
	}
	return items
}

// LoadState reads the budget from kv. Each key falls back to its default
// on its own, so a corrupt expense list does not discard the salary.
func LoadState(ctx context.Context, kv persist.Getter, lang i18n.Language) model.BudgetState {
	def := DefaultState(lang)
	state := model.BudgetState{
		NetSalary: persist.Load(ctx, kv, persist.KeyNetSalary, def.NetSalary),
		Expenses:  persist.LoadChecked(ctx, kv, persist.KeyExpenses, def.Expenses, CheckItems),
		Incomes:   persist.LoadChecked(ctx, kv, persist.KeyIncomes, def.Incomes, CheckItems),
	}
	return normalize(state)
}

// CheckItems rejects a collection in which two items share an id.
func CheckItems(items []model.LineItem) error {
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
