package menu

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// PathSeparator splits submenu keys in a menu path such as "git:remote".
const PathSeparator = ":"

// Resolve walks the submenu keys in path starting from root. An empty path
// resolves to root itself.
func Resolve(root *Menu, path string) (*Menu, error) {
	if root == nil {
		return nil, errors.New("resolve menu path: nil root")
	}
	trimmed := strings.Trim(strings.TrimSpace(path), PathSeparator)
	if trimmed == "" {
		return root, nil
	}
	current := root
	walked := make([]string, 0, 4)
	for _, key := range strings.Split(trimmed, PathSeparator) {
		key = strings.TrimSpace(key)
		walked = append(walked, key)
		next, ok := current.Submenus.Get(key)
		if !ok {
			next, ok = current.Submenus.Get(strings.ToLower(key))
		}
		if !ok {
			return nil, errors.Newf("unknown menu %q", strings.Join(walked, PathSeparator))
		}
		current = next
	}
	return current, nil
}

// Paths lists every submenu path reachable from root in display order.
func Paths(root *Menu) []string {
	var out []string
	var walk func(prefix string, m *Menu)
	walk = func(prefix string, m *Menu) {
		for _, key := range m.Submenus.Keys() {
			sub, _ := m.Submenus.Get(key)
			id := key
			if prefix != "" {
				id = prefix + PathSeparator + key
			}
			out = append(out, id)
			walk(id, sub)
		}
	}
	if root != nil {
		walk("", root)
	}
	return out
}

func keyFromName(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '_' || r == '-' || r == ':' || r == '\t'
	})
	return strings.Join(fields, "-")
}
