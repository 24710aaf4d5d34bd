// Package budget owns the editable budget state: the line-item collection
// operations, the reducer that applies user actions, and the store that
// recomputes the summary and notifies listeners after every change.
package budget

import "github.com/Veraticus/monthly-budget/internal/model"

// NextID returns the id the next added item receives: one more than the
// highest id present, or 1 for an empty collection. Ids below zero count
// as zero.
func NextID(items []model.LineItem) int {
	highest := 0
	for _, item := range items {
		if item.ID > highest {
			highest = item.ID
		}
	}
	return highest + 1
}

// Add returns a copy of items with a blank item appended.
func Add(items []model.LineItem) []model.LineItem {
	out := make([]model.LineItem, 0, len(items)+1)
	out = append(out, items...)
	return append(out, model.LineItem{ID: NextID(items)})
}

// Remove returns a copy of items without the item with id. Remaining items
// keep their ids and order.
func Remove(items []model.LineItem, id int) []model.LineItem {
	out := make([]model.LineItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// Update returns a copy of items where the item with id has field set to
// value. An unknown id or field yields an unchanged copy.
func Update(items []model.LineItem, id int, field model.ItemField, value string) []model.LineItem {
	out := make([]model.LineItem, len(items))
	for i, item := range items {
		if item.ID == id && field.Valid() {
			item = item.With(field, value)
		}
		out[i] = item
	}
	return out
}

// Find returns the item with id.
func Find(items []model.LineItem, id int) (model.LineItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return model.LineItem{}, false
}
