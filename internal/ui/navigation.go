package ui

import (
	"github.com/atomicstack/menunav/internal/logging/events"
	"github.com/atomicstack/menunav/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return m.cancel(events.PromptReasonInterrupt)
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up", "ctrl+p":
		m.moveCursorUp()
	case "down", "ctrl+n":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

// handleEscapeKey clears an active filter first; with no filter it cancels
// the prompt.
func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current != nil && current.Filter != "" {
		current.SetFilter("", 0)
		events.Filter.Cleared(current.Title)
		m.errMsg = ""
		m.syncViewport(current)
		return nil
	}
	return m.cancel(events.PromptReasonEscape)
}

func (m *Model) cancel(reason events.PromptReason) tea.Cmd {
	events.Prompt.Cancel(m.title, reason)
	m.result = prompt.Cancel()
	m.done = true
	return tea.Quit
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		m.errMsg = "nothing to select"
		return nil
	}
	events.UI.MenuEnter(current.Title, item.Label, item.Index, current.Filter)
	m.errMsg = ""
	m.result = prompt.SelectedAt(item.Index)
	m.done = true
	return tea.Quit
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorUp() {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursorDown() {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.UI.MenuCursor(current.Title, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}
