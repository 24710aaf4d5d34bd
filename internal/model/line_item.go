package model

// CollectionKind identifies one of the two line-item collections.
// The kind string is also the storage key the collection is persisted under.
type CollectionKind string

const (
	// KindExpenses is the collection of fixed monthly expenses.
	KindExpenses CollectionKind = "expenses"
	// KindIncomes is the collection of additional income lines.
	KindIncomes CollectionKind = "incomes"
)

// Kinds lists every collection kind in display order.
var Kinds = []CollectionKind{KindExpenses, KindIncomes}

// Valid reports whether k names a known collection.
func (k CollectionKind) Valid() bool {
	return k == KindExpenses || k == KindIncomes
}

// ItemField names an editable field of a line item.
type ItemField string

const (
	FieldCategory ItemField = "category"
	FieldAmount   ItemField = "amount"
)

// Valid reports whether f names an editable field.
func (f ItemField) Valid() bool {
	return f == FieldCategory || f == FieldAmount
}

// LineItem is a user-entered category/amount pair. Amount keeps the raw text
// the user typed; it is only parsed when totals are computed.
type LineItem struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	ID       int    `json:"id"`
}

// With returns a copy of the item with field set to value.
// Unknown fields leave the item unchanged.
func (i LineItem) With(field ItemField, value string) LineItem {
	switch field {
	case FieldCategory:
		i.Category = value
	case FieldAmount:
		i.Amount = value
	}
	return i
}
