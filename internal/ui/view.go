package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	itemIndicator = "▌"
	footerHint    = "↑/↓ move  enter select  type to filter  esc cancel"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return m.summary()
	}
	lines := make([]styledLine, 0, 16)
	if header := m.headerLine(); header != "" {
		lines = append(lines, styledLine{text: header})
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
		start := 0
		displayItems := current.Items
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
			start = current.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(displayItems) {
				start = len(displayItems) - maxItems
				if start < 0 {
					start = 0
				}
				current.ViewportOffset = start
			}
			displayItems = displayItems[start : start+maxItems]
		}
		if len(current.Items) == 0 {
			msg := "(no entries)"
			if current.Filter != "" {
				msg = fmt.Sprintf("No matches for %q", current.Filter)
			}
			lines = append(lines, styledLine{text: msg, style: styles.Info})
		} else {
			for i, item := range displayItems {
				lines = append(lines, m.buildItemLine(item.Label, start+i, current, m.width))
			}
		}
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHint, style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := applyWidth([]styledLine{statusLine}, m.width)
	out := renderLines(append(lines, bottomLines...))
	return out + "\n" + truncateText(m.filterPrompt(), m.width)
}

// headerLine renders the question followed by the breadcrumb title. The
// styled result is truncated with ANSI awareness by applyWidth.
func (m *Model) headerLine() string {
	parts := make([]string, 0, 2)
	if msg := strings.TrimSpace(m.message); msg != "" {
		parts = append(parts, render(styles.Message, msg))
	}
	if title := strings.TrimSpace(m.title); title != "" {
		parts = append(parts, render(styles.Header, title))
	}
	return strings.Join(parts, "  ")
}

// summary is what stays on screen once the prompt has been answered.
func (m *Model) summary() string {
	if m.result.Index < 0 {
		return ""
	}
	current := m.currentLevel()
	if current == nil {
		return ""
	}
	for _, item := range current.Full {
		if item.Index == m.result.Index {
			line := render(styles.Message, m.message) + " " + render(styles.Answer, item.Label)
			return truncateText(line, m.width) + "\n"
		}
	}
	return ""
}

// buildItemLine constructs a single styledLine for a menu item. When width
// is positive the text is padded so the selected item's background spans
// the full row.
func (m *Model) buildItemLine(label string, idx int, current *level, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := itemIndicator + " " + label
	if width > 0 {
		if pad := width - ansi.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.currentLevel())
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // status line + filter prompt
	if m.headerLine() != "" {
		used++
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := render(line.prefixStyle, string(runes[:line.highlightFrom]))
			tail := render(line.style, string(runes[line.highlightFrom:]))
			text = head + tail
		} else {
			text = render(line.style, text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}
