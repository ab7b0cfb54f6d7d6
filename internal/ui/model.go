package ui

import (
	"reflect"

	"github.com/atomicstack/menunav/internal/prompt"
	"github.com/atomicstack/menunav/internal/theme"
	uistate "github.com/atomicstack/menunav/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options tunes how prompts are laid out.
type Options struct {
	// Width and Height pin the viewport; zero follows the terminal size.
	Width  int
	Height int
	// ShowFooter adds a key hint row under the list.
	ShowFooter bool
}

// Model implements the Bubble Tea model for a single select prompt.
type Model struct {
	level       *level
	message     string
	title       string
	errMsg      string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	filterCursor cursor.Model

	handlers map[reflect.Type]msgHandler

	done   bool
	result prompt.Result
}

// NewModel initialises the select state for req.
func NewModel(req prompt.SelectRequest, opts Options) *Model {
	m := &Model{
		level:      uistate.NewLevel(req.Title, uistate.ItemsFromChoices(req.Choices)),
		message:    req.Message,
		title:      req.Title,
		showFooter: opts.ShowFooter,
		result:     prompt.Cancel(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	c.SetMode(cursor.CursorStatic)
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	c.Focus()
	m.filterCursor = c
	m.syncViewport(m.level)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Result reports how the prompt ended. Until the user submits, the result
// is a cancellation.
func (m *Model) Result() prompt.Result {
	return m.result
}

// Done reports whether the prompt has finished.
func (m *Model) Done() bool {
	return m.done
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) currentLevel() *level {
	return m.level
}
