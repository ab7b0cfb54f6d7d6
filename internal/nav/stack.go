package nav

import "github.com/atomicstack/menunav/internal/menu"

// Stack is the path from the root menu to the menu currently on screen.
// Index 0 is the root.
type Stack struct {
	entries []*menu.Menu
}

// NewStack creates an empty navigation stack.
func NewStack() *Stack {
	return &Stack{entries: make([]*menu.Menu, 0, 4)}
}

// Push adds m on top of the stack.
func (s *Stack) Push(m *menu.Menu) {
	s.entries = append(s.entries, m)
}

// Pop removes and returns the top entry. Returns nil if the stack is empty.
func (s *Stack) Pop() *menu.Menu {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() *menu.Menu {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// Root returns the bottom entry.
func (s *Stack) Root() *menu.Menu {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[0]
}

// Len returns the depth of the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// TruncateToRoot drops every entry above the root.
func (s *Stack) TruncateToRoot() {
	if len(s.entries) <= 1 {
		return
	}
	for i := 1; i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = s.entries[:1]
}

// Titles returns the menu names from root to top.
func (s *Stack) Titles() []string {
	titles := make([]string, 0, len(s.entries))
	for _, m := range s.entries {
		titles = append(titles, m.Name)
	}
	return titles
}
