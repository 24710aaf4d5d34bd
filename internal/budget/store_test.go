package budget

import (
	"context"
	"sync"
	"testing"

	"github.com/Veraticus/monthly-budget/internal/finance"
	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/Veraticus/monthly-budget/internal/persist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubmitter struct {
	values map[string]any
	keys   []string
	mu     sync.Mutex
}

func (r *recordingSubmitter) Submit(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.values == nil {
		r.values = make(map[string]any)
	}
	r.values[key] = value
	r.keys = append(r.keys, key)
}

func TestStore_DispatchRecomputesSummary(t *testing.T) {
	store := NewStore(model.BudgetState{})

	store.Dispatch(SetSalary{Value: "2000"})
	store.Dispatch(AddItem{Kind: model.KindExpenses})
	store.Dispatch(UpdateItem{Kind: model.KindExpenses, ID: 1, Field: model.FieldCategory, Value: "Rent"})
	store.Dispatch(UpdateItem{Kind: model.KindExpenses, ID: 1, Field: model.FieldAmount, Value: "800"})
	store.Dispatch(AddItem{Kind: model.KindIncomes})
	change := store.Dispatch(UpdateItem{Kind: model.KindIncomes, ID: 1, Field: model.FieldAmount, Value: "200"})

	summary := store.Summary()
	assert.Equal(t, change.Summary, summary)
	assert.InDelta(t, 2200, summary.TotalIncome, 1e-9)
	assert.InDelta(t, 800, summary.TotalExpenses, 1e-9)
	assert.InDelta(t, 1400, summary.Available, 1e-9)
	assert.InDelta(t, 36.36, summary.ExpensePercentage, 0.01)
	assert.Equal(t, finance.TierLow, summary.Tier)
}

func TestStore_NilCollectionsNormalized(t *testing.T) {
	store := NewStore(model.BudgetState{})
	state := store.State()
	assert.NotNil(t, state.Expenses)
	assert.NotNil(t, state.Incomes)
}

func TestStore_ListenersSeeChangesInOrder(t *testing.T) {
	store := NewStore(DefaultState(i18n.English))

	var slots []Slot
	unsubscribe := store.Subscribe(func(c Change) {
		slots = append(slots, c.Slot)
		assert.Equal(t, store.State(), c.Next)
	})

	store.Dispatch(SetSalary{Value: "1"})
	store.Dispatch(RemoveItem{Kind: model.KindIncomes, ID: 2})
	unsubscribe()
	unsubscribe()
	store.Dispatch(SetSalary{Value: "2"})

	assert.Equal(t, []Slot{SlotNetSalary, SlotIncomes}, slots)
}

func TestStore_ChangeCarriesPrior(t *testing.T) {
	store := NewStore(model.BudgetState{NetSalary: "100"})
	change := store.Dispatch(SetSalary{Value: "200"})

	assert.Equal(t, "100", change.Prior.NetSalary)
	assert.Equal(t, "200", change.Next.NetSalary)
}

func TestPersistListener_SavesOnlyTouchedSlot(t *testing.T) {
	store := NewStore(model.BudgetState{})
	rec := &recordingSubmitter{}
	store.Subscribe(PersistListener(rec))

	store.Dispatch(SetSalary{Value: "1500"})
	store.Dispatch(AddItem{Kind: model.KindExpenses})
	store.Dispatch(RemoveItem{Kind: model.KindExpenses, ID: 1})
	store.Dispatch(AddItem{Kind: "bogus"})

	assert.Equal(t, []string{persist.KeyNetSalary, persist.KeyExpenses, persist.KeyExpenses}, rec.keys)
	assert.Equal(t, "1500", rec.values[persist.KeyNetSalary])
	assert.Equal(t, []model.LineItem{}, rec.values[persist.KeyExpenses])
	assert.NotContains(t, rec.values, persist.KeyIncomes)
}

func TestPersistListener_WriterRoundTrip(t *testing.T) {
	kv := newMapKV()
	ctx := context.Background()
	writer := persist.NewWriter(ctx, kv)

	store := NewStore(DefaultState(i18n.Italian))
	store.Subscribe(PersistListener(writer))
	store.Dispatch(UpdateItem{Kind: model.KindExpenses, ID: 2, Field: model.FieldAmount, Value: "90"})
	store.Dispatch(SetSalary{Value: "1800"})
	require.NoError(t, writer.Close())

	loaded := LoadState(ctx, kv, i18n.English)
	assert.Equal(t, store.State().Expenses, loaded.Expenses)
	assert.Equal(t, "1800", loaded.NetSalary)
	// Incomes were never touched, so they fall back to the English defaults.
	assert.Equal(t, DefaultState(i18n.English).Incomes, loaded.Incomes)
}
