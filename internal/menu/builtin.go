package menu

import "strings"

const builtinDefinition = `
name: Main Menu
submenus:
  - key: system
    name: System
    items:
      - name: Show date
        run: date
      - name: Working directory
        run: pwd
      - name: Environment summary
        run: 'echo "user=${USER:-unknown} shell=${SHELL:-unknown}"'
  - key: files
    name: Files
    items:
      - name: List directory
        run: ls -la
      - name: Count entries
        run: 'set -- *; echo "$# entries"'
items:
  - name: Greet
    run: 'echo "Hello, $NAME!"'
    inputs:
      - name: NAME
        message: What is your name?
        placeholder: name
        rules:
          - tag: required
            message: Name is required
          - tag: min=2
            message: Name must be at least 2 characters
`

// Builtin returns the demo menu shown when no definition file is given.
func Builtin(opts ...Option) (*Menu, error) {
	return Load(strings.NewReader(builtinDefinition), FormatYAML, opts...)
}
