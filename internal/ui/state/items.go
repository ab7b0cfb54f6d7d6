package state

import (
	"github.com/atomicstack/menunav/internal/prompt"
)

// Item is a rendered choice. Index points back into the prompt request.
type Item struct {
	Index int
	Label string
}

// ItemsFromChoices converts prompt choices into level items.
func ItemsFromChoices(choices []prompt.Choice) []Item {
	items := make([]Item, len(choices))
	for i, c := range choices {
		items[i] = Item{Index: i, Label: c.Title}
	}
	return items
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
