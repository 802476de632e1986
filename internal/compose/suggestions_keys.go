package compose

import tea "github.com/charmbracelet/bubbletea"

// handleSuggestionKeys intercepts keys that drive the suggestion popup.
// Returns true when the key was consumed.
func (m *Model) handleSuggestionKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !m.session.Active() {
		return false, nil
	}

	if msg.String() == "esc" {
		m.session.Dismiss()
		m.clearSuggestions()
		m.resize()
		return true, nil
	}

	count := m.suggestionCount()
	if count == 0 {
		return false, nil
	}

	switch msg.String() {
	case "up":
		m.selected--
		if m.selected < 0 {
			m.selected = count - 1
		}
		return true, nil
	case "down":
		m.selected++
		if m.selected >= count {
			m.selected = 0
		}
		return true, nil
	case "tab", "enter":
		m.applySelected()
		return true, nil
	}

	return false, nil
}
