package budget

import (
	"sync"

	"github.com/Veraticus/monthly-budget/internal/finance"
	"github.com/Veraticus/monthly-budget/internal/model"
	"github.com/Veraticus/monthly-budget/internal/persist"
)

// Change describes one applied action.
type Change struct {
	Prior   model.BudgetState
	Next    model.BudgetState
	Slot    Slot
	Summary finance.Summary
}

// Listener is notified after every dispatched action.
type Listener func(Change)

// Store holds the current budget state and its derived summary.
//
// Dispatch is serialized: listeners observe changes one at a time and in
// dispatch order. Listeners may read the store but must not dispatch.
type Store struct {
	listeners map[int]Listener
	state     model.BudgetState
	summary   finance.Summary
	order     []int
	nextID    int
	dispatch  sync.Mutex
	mu        sync.RWMutex
}

// NewStore returns a store holding initial.
func NewStore(initial model.BudgetState) *Store {
	initial = normalize(initial.Clone())
	return &Store{
		state:     initial,
		summary:   finance.Derive(initial),
		listeners: make(map[int]Listener),
	}
}

// State returns a copy of the current state.
func (s *Store) State() model.BudgetState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Summary returns the summary of the current state.
func (s *Store) Summary() finance.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// Dispatch applies action, recomputes the summary and notifies listeners.
func (s *Store) Dispatch(action Action) Change {
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	s.mu.Lock()
	prior := s.state
	next, slot := Reduce(prior, action)
	summary := finance.Derive(next)
	s.state = next
	s.summary = summary
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	change := Change{
		Prior:   prior.Clone(),
		Next:    next.Clone(),
		Slot:    slot,
		Summary: summary,
	}
	for _, listener := range listeners {
		listener(change)
	}
	return change
}

// Subscribe registers listener and returns a function that removes it.
func (s *Store) Subscribe(listener Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, existing := range s.order {
				if existing == id {
					s.order = append(s.order[:i:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Submitter queues a value for background persistence.
type Submitter interface {
	Submit(key string, value any)
}

// PersistListener returns a listener that saves the slot each change
// touched. Untouched slots are never rewritten.
func PersistListener(w Submitter) Listener {
	return func(c Change) {
		switch c.Slot {
		case SlotNetSalary:
			w.Submit(persist.KeyNetSalary, c.Next.NetSalary)
		case SlotExpenses:
			w.Submit(persist.KeyExpenses, c.Next.Expenses)
		case SlotIncomes:
			w.Submit(persist.KeyIncomes, c.Next.Incomes)
		}
	}
}

func normalize(state model.BudgetState) model.BudgetState {
	if state.Expenses == nil {
		state.Expenses = []model.LineItem{}
	}
	if state.Incomes == nil {
		state.Incomes = []model.LineItem{}
	}
	return state
}
