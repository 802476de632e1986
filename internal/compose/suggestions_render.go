package compose

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/coppermind/quill/mention"
)

func (m *Model) suggestionHeight() int {
	if m.suggestionCount() == 0 {
		return 0
	}
	return lipgloss.Height(m.renderSuggestions())
}

func (m *Model) renderSuggestions() string {
	count := m.suggestionCount()
	if count == 0 {
		return ""
	}
	normalStyle := lipgloss.NewStyle().Foreground(metaColor)
	selectedStyle := lipgloss.NewStyle().Foreground(selfColor).Bold(true)

	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		prefix := "  "
		style := normalStyle
		if i == m.selected {
			prefix = "> "
			style = selectedStyle
		}
		line := prefix + m.suggestionLabel(i)
		if m.mainWidth() > 0 {
			line = truncateLine(line, m.mainWidth())
		}
		lines = append(lines, m.zones.Mark(suggestionZoneID(i), style.Render(line)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) suggestionLabel(i int) string {
	switch m.kind {
	case suggestionMember:
		c := m.matches[i]
		label := c.Label
		if c.Avatar != "" {
			label = c.Avatar + " " + label
		}
		return fmt.Sprintf("%s · %s", label, c.ID)
	case suggestionEmoji:
		s := m.glyphMatches[i]
		return s.Glyph + " :" + s.Name + ":"
	}
	return ""
}

func suggestionZoneID(i int) string {
	return fmt.Sprintf("suggestion-%d", i)
}

func (m *Model) applyCandidate(c mention.Candidate) {
	raw, cursor := mention.InsertEntity(m.raw, m.session.Span(), c.Entity)
	m.commitRaw(raw, cursor)
}

func (m *Model) applyShortcode(s mention.Shortcode) {
	raw, cursor := mention.InsertShortcode(m.raw, m.session.Span(), s)
	m.commitRaw(raw, cursor)
}

// commitRaw installs a new raw value, re-derives the display for the
// textarea, and parks the cursor after the insertion.
func (m *Model) commitRaw(raw string, cursor int) {
	m.raw = raw
	display := mention.ToDisplay(raw)
	m.input.SetValue(display)
	m.setCursorOffset(cursor)
	m.lastDisplay = display
	m.lastCursor = m.inputCursorPos()
	m.session.Consume()
	m.clearSuggestions()
	m.resize()
}

func truncateLine(value string, maxLen int) string {
	if maxLen <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= maxLen {
		return value
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}
