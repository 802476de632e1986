package compose

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/coppermind/quill/codeblock"
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleSuggestionKeys(msg); handled {
		return m, cmd
	}

	// Bracketed paste arrives as a single KeyRunes message with Paste set.
	if msg.Type == tea.KeyRunes && msg.Paste {
		m.handlePaste(string(msg.Runes))
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		if strings.TrimSpace(m.input.Value()) != "" {
			m.resetInput()
			m.status = "input cleared"
			return m, nil
		}
		return m, tea.Quit
	case "ctrl+j":
		m.insertAtCursor("\n")
		return m, nil
	case "ctrl+y":
		if err := clipboard.WriteAll(m.raw); err != nil {
			m.status = err.Error()
		} else {
			m.status = "raw text copied"
		}
		return m, nil
	case "enter":
		return m, m.handleSubmit()
	case "esc":
		m.status = ""
		return m, nil
	}

	cmd := m.safeInputUpdate(msg)
	m.syncInput()
	return m, cmd
}

// handlePaste routes pasted text through code detection before insertion, so
// multi-line snippets land in the message already fenced.
func (m *Model) handlePaste(text string) {
	wrapped, fenced := codeblock.Wrap(normalizeNewlines(text))
	m.insertAtCursor(wrapped)
	if fenced {
		m.status = "pasted as code block"
	}
}

// resetInput clears the textarea and the raw value backing it.
func (m *Model) resetInput() {
	m.input.Reset()
	m.raw = ""
	m.lastDisplay = ""
	m.lastCursor = 0
	m.session.Dismiss()
	m.clearSuggestions()
	m.resize()
}
