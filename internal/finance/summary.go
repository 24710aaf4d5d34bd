package finance

import (
	"math"

	"github.com/Veraticus/monthly-budget/internal/model"
)

// Tier is the qualitative classification of the expense percentage.
type Tier string

const (
	// TierLow is 50% or less of income spent on fixed expenses.
	TierLow Tier = "low"
	// TierMedium is above 50% and up to 70%.
	TierMedium Tier = "medium"
	// TierHigh is above 70%.
	TierHigh Tier = "high"
)

// Tier thresholds. Both comparisons are strict: exactly 50 is low and
// exactly 70 is medium.
const (
	MediumThreshold = 50.0
	HighThreshold   = 70.0
)

// Advice split of money left over after fixed expenses.
const (
	SavingsShare       = 0.20
	DiscretionaryShare = 0.80
)

// Classify maps an expense percentage to its tier. First match wins.
func Classify(percentage float64) Tier {
	switch {
	case percentage > HighThreshold:
		return TierHigh
	case percentage > MediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// Advice is the advisory split shown under the available money.
// At most one of Savings/Discretionary or Shortfall is meaningful.
type Advice struct {
	Kind          AdviceKind `json:"kind"`
	Savings       float64    `json:"savings"`
	Discretionary float64    `json:"discretionary"`
	Shortfall     float64    `json:"shortfall"`
}

// AdviceKind says which advice applies.
type AdviceKind string

const (
	// AdviceNone is used when there is no income to reason about.
	AdviceNone AdviceKind = "none"
	// AdviceSave is used when income covers expenses.
	AdviceSave AdviceKind = "save"
	// AdviceReduce is used when expenses exceed income.
	AdviceReduce AdviceKind = "reduce"
)

// Summary holds every derived value of a budget state.
type Summary struct {
	Advice            Advice  `json:"advice"`
	Tier              Tier    `json:"tier"`
	NetSalary         float64 `json:"netSalary"`
	TotalIncomes      float64 `json:"totalIncomes"`
	TotalIncome       float64 `json:"totalIncome"`
	TotalExpenses     float64 `json:"totalExpenses"`
	Available         float64 `json:"available"`
	ExpensePercentage float64 `json:"expensePercentage"`
	ProgressPercent   float64 `json:"progressPercent"`
}

// HasIncome reports whether total income is positive, which is when the
// percentage and advice blocks carry meaning.
func (s Summary) HasIncome() bool {
	return s.TotalIncome > 0
}

// HasAdditionalIncome reports whether any income line contributes.
func (s Summary) HasAdditionalIncome() bool {
	return s.TotalIncomes > 0
}

// InDeficit reports whether expenses exceed income.
func (s Summary) InDeficit() bool {
	return s.Available < 0
}

// Sum adds the parsed amounts of items.
func Sum(items []model.LineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += ParseAmount(item.Amount)
	}
	return total
}

// Derive computes the full summary of state.
func Derive(state model.BudgetState) Summary {
	s := Summary{
		TotalExpenses: Sum(state.Expenses),
		TotalIncomes:  Sum(state.Incomes),
		NetSalary:     ParseAmount(state.NetSalary),
	}
	s.TotalIncome = s.NetSalary + s.TotalIncomes
	s.Available = s.TotalIncome - s.TotalExpenses

	if s.TotalIncome > 0 {
		s.ExpensePercentage = s.TotalExpenses / s.TotalIncome * 100
	}
	s.Tier = Classify(s.ExpensePercentage)
	s.ProgressPercent = math.Min(s.ExpensePercentage, 100)
	s.Advice = adviceFor(s)

	return s
}

func adviceFor(s Summary) Advice {
	if !s.HasIncome() {
		return Advice{Kind: AdviceNone}
	}
	if s.Available >= 0 {
		return Advice{
			Kind:          AdviceSave,
			Savings:       s.Available * SavingsShare,
			Discretionary: s.Available * DiscretionaryShare,
		}
	}
	return Advice{
		Kind:      AdviceReduce,
		Shortfall: -s.Available,
	}
}
