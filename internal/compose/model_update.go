package compose

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/coppermind/quill/mention"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case rosterReloadedMsg:
		m.reloadRoster()
		m.status = fmt.Sprintf("roster reloaded · %d members", msg.count)
		m.refreshSuggestions(m.input.Value(), m.inputCursorPos())
		m.resize()
		return m, nil
	}

	cmd := m.safeInputUpdate(msg)
	m.syncInput()
	return m, cmd
}

// safeInputUpdate feeds a message to the textarea, recovering panics raised
// inside the widget so a malformed sequence cannot take down the session.
func (m *Model) safeInputUpdate(msg tea.Msg) (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.status = fmt.Sprintf("input error: %v", r)
		}
	}()
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// syncInput reconciles the raw value against whatever the textarea now holds
// and rescans for an active trigger. When an edit clips a tagged reference,
// the re-derived display no longer matches the typed text; the textarea is
// reset to show the degraded remnant, keeping raw and display in lockstep.
func (m *Model) syncInput() {
	value := m.input.Value()
	pos := m.inputCursorPos()
	if value == m.lastDisplay && pos == m.lastCursor {
		return
	}

	if value != m.lastDisplay {
		m.raw = mention.Reconcile(m.raw, m.lastDisplay, value)
		if display := mention.ToDisplay(m.raw); display != value {
			m.input.SetValue(display)
			m.setCursorOffset(pos)
			value = display
			pos = m.inputCursorPos()
		}
		m.lastDisplay = value
	}
	m.lastCursor = pos

	m.refreshSuggestions(value, pos)
	m.resize()
}

const inputMaxHeight = 8
const inputPadding = 1

func (m *Model) mainWidth() int {
	return m.width
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	inputWidth := m.mainWidth() - inputPadding
	if inputWidth < 1 {
		inputWidth = 1
	}
	m.input.SetWidth(inputWidth)
	lineCount := m.input.LineCount()
	if lineCount < 1 {
		lineCount = 1
	}
	if lineCount > inputMaxHeight {
		lineCount = inputMaxHeight
	}
	m.input.SetHeight(lineCount)
	inputHeight := m.input.Height() + 2

	statusHeight := 1
	marginHeight := 1
	m.viewport.Width = m.mainWidth()
	m.viewport.Height = m.height - inputHeight - statusHeight - m.suggestionHeight() - marginHeight
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	if m.initialScroll {
		m.refreshViewport(true)
		m.initialScroll = false
		return
	}
	m.refreshViewport(false)
}
