package compose

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/coppermind/quill/mention"
)

func (m *Model) handleSubmit() tea.Cmd {
	m.syncInput()
	if strings.TrimSpace(m.input.Value()) == "" {
		return nil
	}

	msg := Message{
		ID:     uuid.NewString(),
		Author: m.self,
		Raw:    m.raw,
		At:     time.Now(),
	}
	m.transcript = append(m.transcript, msg)
	m.touchMentioned(msg)
	m.resetInput()
	m.refreshViewport(true)

	if m.mentionsSelf(msg.Raw) {
		if err := notifyMention(msg); err != nil {
			m.logf("notification failed: %v", err)
		}
	}
	return nil
}

// touchMentioned bumps last-seen for every member referenced in the message,
// which floats them to the top of future empty-filter suggestions.
func (m *Model) touchMentioned(msg Message) {
	if m.store == nil {
		return
	}
	touched := false
	for _, e := range mention.Entities(msg.Raw) {
		if err := m.store.Touch(e.ID, msg.At); err != nil {
			m.status = err.Error()
			return
		}
		touched = true
	}
	if touched {
		m.reloadRoster()
	}
}

func (m *Model) mentionsSelf(raw string) bool {
	for _, e := range mention.Entities(raw) {
		if e.ID == m.self || strings.EqualFold(e.Label, m.self) {
			return true
		}
	}
	return false
}
