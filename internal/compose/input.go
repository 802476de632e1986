package compose

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

func newComposerInput() textarea.Model {
	input := textarea.New()
	input.Placeholder = "message (@ to mention, : for emoji)"
	input.Prompt = ""
	input.CharLimit = 0
	input.ShowLineNumbers = false
	input.KeyMap.InsertNewline.SetEnabled(false)
	applyInputStyles(&input)
	input.Focus()
	return input
}

func applyInputStyles(input *textarea.Model) {
	input.FocusedStyle.Base = lipgloss.NewStyle().Foreground(textColor).Background(inputBg)
	input.FocusedStyle.Text = lipgloss.NewStyle().Foreground(textColor).Background(inputBg)
	input.FocusedStyle.Prompt = lipgloss.NewStyle().Foreground(caretColor).Background(inputBg)
	input.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(inputBg)
	input.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(blurColor).Background(inputBg)
	input.BlurredStyle.Base = lipgloss.NewStyle().Foreground(blurColor).Background(inputBg)
	input.BlurredStyle.Text = lipgloss.NewStyle().Foreground(blurColor).Background(inputBg)
	input.BlurredStyle.Prompt = lipgloss.NewStyle().Foreground(caretColor).Background(inputBg)
	input.BlurredStyle.CursorLine = lipgloss.NewStyle().Background(inputBg)
	input.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(blurColor).Background(inputBg)
}

// inputCursorPos converts the textarea's row/column cursor into a rune offset
// into the full value. Newlines count as one rune each.
func (m *Model) inputCursorPos() int {
	value := m.input.Value()
	if value == "" {
		return 0
	}
	lines := strings.Split(value, "\n")
	row := m.input.Line()
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}
	col := m.input.LineInfo().ColumnOffset
	if col < 0 {
		col = 0
	}
	lineRunes := []rune(lines[row])
	if col > len(lineRunes) {
		col = len(lineRunes)
	}

	pos := 0
	for i := 0; i < row; i++ {
		pos += len([]rune(lines[i])) + 1
	}
	pos += col

	total := len([]rune(value))
	if pos > total {
		pos = total
	}
	return pos
}

// setCursorOffset is the inverse of inputCursorPos: it places the cursor at a
// rune offset into the value. The textarea only exposes row-relative motion,
// so this walks CursorUp/CursorDown until the target row is reached. The hop
// budget bounds the walk across soft-wrapped rows.
func (m *Model) setCursorOffset(offset int) {
	value := []rune(m.input.Value())
	if offset < 0 {
		offset = 0
	}
	if offset > len(value) {
		offset = len(value)
	}

	lines := strings.Split(string(value), "\n")
	row := 0
	col := offset
	for row < len(lines)-1 {
		width := len([]rune(lines[row])) + 1
		if col < width {
			break
		}
		col -= width
		row++
	}

	for hops := len(value) + len(lines); hops > 0 && m.input.Line() < row; hops-- {
		m.input.CursorDown()
	}
	for hops := len(value) + len(lines); hops > 0 && m.input.Line() > row; hops-- {
		m.input.CursorUp()
	}
	m.input.SetCursor(col)
}

func (m *Model) insertAtCursor(text string) {
	if text == "" {
		return
	}
	m.input.InsertString(text)
	m.syncInput()
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
