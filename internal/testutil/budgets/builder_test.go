package budgets

import (
	"testing"

	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_AssignsIDsPerCollection(t *testing.T) {
	state := NewBuilder().
		WithSalary("2000").
		WithExpense("Rent", "800").
		WithExpense("Utilities", "120").
		WithIncome("Freelance", "200").
		Build()

	assert.Equal(t, "2000", state.NetSalary)
	assert.Equal(t, []model.LineItem{
		{ID: 1, Category: "Rent", Amount: "800"},
		{ID: 2, Category: "Utilities", Amount: "120"},
	}, state.Expenses)
	assert.Equal(t, []model.LineItem{
		{ID: 1, Category: "Freelance", Amount: "200"},
	}, state.Incomes)
}

func TestBuilder_BuildReturnsCopies(t *testing.T) {
	b := NewBuilder().WithExpense("Rent", "800")

	first := b.Build()
	first.Expenses[0].Amount = "changed"

	assert.Equal(t, "800", b.Build().Expenses[0].Amount)
}

func TestBuilder_ExplicitIDsContinueSequence(t *testing.T) {
	state := NewBuilder().
		WithItem(model.KindExpenses, 7, "Gym", "30").
		WithExpense("Phone", "15").
		Build()

	assert.Equal(t, 8, state.Expenses[1].ID)
}
