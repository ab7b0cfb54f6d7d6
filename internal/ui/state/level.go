package state

// Level encapsulates select prompt state such as cursor position, filter, and viewport.
type Level struct {
	Title          string
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level with the cursor on the first item.
func NewLevel(title string, items []Item) *Level {
	l := &Level{
		Title:      title,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	l.Cursor = 0
	return l
}

// Current returns the item under the cursor.
func (l *Level) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems refreshes the level items, keeping the viewport when possible.
func (l *Level) UpdateItems(items []Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
