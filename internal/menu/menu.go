package menu

import "context"

// Action is a leaf entry that performs work when selected.
type Action struct {
	Name string
	Run  func(context.Context) error
}

// Menu is a named node holding ordered submenus and actions.
type Menu struct {
	Name     string
	Submenus *Submenus
	Items    []Action
}

// New returns an empty menu with the given display name.
func New(name string) *Menu {
	return &Menu{Name: name}
}

// AddSubmenu registers sub under key. Re-adding a key replaces the menu but
// keeps its original position.
func (m *Menu) AddSubmenu(key string, sub *Menu) *Menu {
	if m.Submenus == nil {
		m.Submenus = NewSubmenus()
	}
	m.Submenus.Set(key, sub)
	return m
}

// AddAction appends an action.
func (m *Menu) AddAction(name string, run func(context.Context) error) *Menu {
	m.Items = append(m.Items, Action{Name: name, Run: run})
	return m
}

// HasEntries reports whether the menu carries submenus or items.
func (m *Menu) HasEntries() bool {
	if m == nil {
		return false
	}
	return m.Submenus.Len() > 0 || len(m.Items) > 0
}

// Submenus is an insertion-ordered mapping from key to child menu.
type Submenus struct {
	keys  []string
	menus map[string]*Menu
}

// NewSubmenus returns an empty ordered mapping.
func NewSubmenus() *Submenus {
	return &Submenus{menus: make(map[string]*Menu)}
}

// Set stores sub under key.
func (s *Submenus) Set(key string, sub *Menu) {
	if _, ok := s.menus[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.menus[key] = sub
}

// Get returns the submenu stored under key.
func (s *Submenus) Get(key string) (*Menu, bool) {
	if s == nil {
		return nil, false
	}
	sub, ok := s.menus[key]
	return sub, ok
}

// Keys returns the keys in insertion order.
func (s *Submenus) Keys() []string {
	if s == nil {
		return nil
	}
	dup := make([]string, len(s.keys))
	copy(dup, s.keys)
	return dup
}

// Len returns the number of submenus.
func (s *Submenus) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Values returns the submenus in insertion order.
func (s *Submenus) Values() []*Menu {
	if s == nil {
		return nil
	}
	values := make([]*Menu, 0, len(s.keys))
	for _, key := range s.keys {
		values = append(values, s.menus[key])
	}
	return values
}
