package compose

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if m.handleMouseClick(msg) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleMouseClick(msg tea.MouseMsg) bool {
	for i := 0; i < m.suggestionCount(); i++ {
		if m.zones.Get(suggestionZoneID(i)).InBounds(msg) {
			m.selected = i
			m.applySelected()
			return true
		}
	}

	for _, entry := range m.transcript {
		if m.zones.Get("message-" + entry.ID).InBounds(msg) {
			if err := clipboard.WriteAll(entry.Raw); err != nil {
				m.status = err.Error()
			} else {
				m.status = "message copied"
			}
			return true
		}
	}
	return false
}
