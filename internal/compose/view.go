package compose

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *Model) View() string {
	statusLine := lipgloss.NewStyle().Foreground(statusColor).Render(m.statusLine())

	var lines []string
	lines = append(lines, m.viewport.View())
	if suggestions := m.renderSuggestions(); suggestions != "" {
		lines = append(lines, suggestions)
	}
	lines = append(lines, "") // margin above input
	lines = append(lines, m.renderInput(), statusLine)

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderInput() string {
	content := m.input.View()
	style := lipgloss.NewStyle().Background(inputBg).Padding(0, inputPadding, 0, 0)
	if width := m.mainWidth(); width > 0 {
		style = style.Width(width)
	}
	blank := style.Render("")
	return strings.Join([]string{blank, style.Render(content), blank}, "\n")
}

const rawPreviewLen = 48

func (m *Model) statusLine() string {
	right := ""
	switch {
	case m.input.Value() == "":
		right = "@ mention · : emoji · ctrl+y copy raw"
	case m.raw != m.input.Value():
		// Tagged forms collapse in the input, so surface the raw value here.
		preview := strings.ReplaceAll(m.raw, "\n", " ")
		right = "raw: " + truncateLine(preview, rawPreviewLen)
	}
	left := fmt.Sprintf("@%s · %d members", m.self, len(m.candidates))
	if m.status != "" {
		left = fmt.Sprintf("%s · %s", m.status, left)
	}
	return alignStatusLine(left, right, m.mainWidth())
}

func alignStatusLine(left, right string, width int) string {
	if width <= 0 || right == "" {
		return left
	}
	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	if leftWidth+rightWidth+1 > width {
		return left
	}
	return left + strings.Repeat(" ", width-leftWidth-rightWidth) + right
}
