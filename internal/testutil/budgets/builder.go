// Package budgets provides a fluent builder for budget fixtures used in tests.
//
// Example usage:
//
//	state := budgets.NewBuilder().
//		WithSalary("2000").
//		WithExpense("Rent", "800").
//		WithIncome("Freelance", "200").
//		Build()
package budgets

import (
	"context"
	"fmt"

	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/Veraticus/monthly-budget/internal/persist"
)

// Builder assembles a budget state. Ids are assigned per collection in the
// order items are added, starting at 1, unless set explicitly.
type Builder struct {
	state model.BudgetState
}

// NewBuilder returns an empty builder: no salary and two empty collections.
func NewBuilder() *Builder {
	return &Builder{
		state: model.BudgetState{
			Expenses: []model.LineItem{},
			Incomes:  []model.LineItem{},
		},
	}
}

// WithSalary sets the raw net salary text.
func (b *Builder) WithSalary(salary string) *Builder {
	b.state.NetSalary = salary
	return b
}

// WithExpense appends an expense with the next free id.
func (b *Builder) WithExpense(category, amount string) *Builder {
	return b.WithItem(model.KindExpenses, nextID(b.state.Expenses), category, amount)
}

// WithIncome appends an income with the next free id.
func (b *Builder) WithIncome(category, amount string) *Builder {
	return b.WithItem(model.KindIncomes, nextID(b.state.Incomes), category, amount)
}

// WithItem appends an item with an explicit id.
func (b *Builder) WithItem(kind model.CollectionKind, id int, category, amount string) *Builder {
	item := model.LineItem{ID: id, Category: category, Amount: amount}
	items := append(b.state.Items(kind), item)
	b.state = b.state.WithItems(kind, items)
	return b
}

// Build returns a copy of the assembled state.
func (b *Builder) Build() model.BudgetState {
	return b.state.Clone()
}

// Seed writes the assembled state to kv under the standard keys and returns it.
func (b *Builder) Seed(ctx context.Context, kv persist.Setter) (model.BudgetState, error) {
	state := b.Build()

	values := []struct {
		value any
		key   string
	}{
		{key: persist.KeyNetSalary, value: state.NetSalary},
		{key: persist.KeyExpenses, value: state.Expenses},
		{key: persist.KeyIncomes, value: state.Incomes},
	}

	for _, v := range values {
		encoded, err := persist.Encode(v.value)
		if err != nil {
			return state, err
		}
		if err := kv.Set(ctx, v.key, encoded); err != nil {
			return state, fmt.Errorf("failed to seed %q: %w", v.key, err)
		}
	}

	return state, nil
}

func nextID(items []model.LineItem) int {
	highest := 0
	for _, item := range items {
		if item.ID > highest {
			highest = item.ID
		}
	}
	return highest + 1
}
