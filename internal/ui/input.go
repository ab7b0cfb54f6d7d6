package ui

import (
	"unicode"

	"github.com/atomicstack/menunav/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const filterPlaceholder = "(type to search)"

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	switch msg.String() {
	case "ctrl+u":
		if current.Filter == "" {
			return false
		}
		current.SetFilter("", 0)
		m.errMsg = ""
		events.Filter.Cleared(current.Title)
		m.syncViewport(current)
		return true
	case "ctrl+w":
		if !current.DeleteFilterWordBackward() {
			return false
		}
		m.errMsg = ""
		events.Filter.Backspace(current.Title, current.Filter)
		m.syncViewport(current)
		return true
	case "ctrl+a":
		return current.MoveFilterCursor(-current.FilterCursorPos())
	case "ctrl+e":
		return current.MoveFilterCursor(len([]rune(current.Filter)))
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		return current.MoveFilterCursor(-1)
	case tea.KeyRight:
		return current.MoveFilterCursor(1)
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" {
		return false
	}
	current := m.currentLevel()
	if current == nil {
		return false
	}
	if !current.InsertFilterText(text) {
		return false
	}
	m.errMsg = ""
	events.Filter.Append(current.Title, current.Filter)
	m.syncViewport(current)
	return true
}

func (m *Model) removeFilterRune() bool {
	current := m.currentLevel()
	if current == nil {
		return false
	}
	if !current.DeleteFilterRuneBackward() {
		return false
	}
	m.errMsg = ""
	events.Filter.Backspace(current.Title, current.Filter)
	m.syncViewport(current)
	return true
}

func (m *Model) filterPrompt() string {
	current := m.currentLevel()
	if current == nil {
		return ">"
	}
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := current.Filter
	if text == "" {
		runes := []rune(filterPlaceholder)
		caret := m.renderFilterCursor(string(runes[0]), styles.FilterPlaceholder)
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := current.FilterCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune, styles.Filter) + after
}

func (m *Model) renderFilterCursor(char string, text *lipgloss.Style) string {
	if char == "" {
		char = " "
	}
	if text != nil {
		m.filterCursor.TextStyle = text.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	m.filterCursor.SetChar(char)
	return m.filterCursor.View()
}
