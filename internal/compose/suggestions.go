package compose

import "github.com/coppermind/quill/mention"

type suggestionKind int

const (
	suggestionNone suggestionKind = iota
	suggestionMember
	suggestionEmoji
)

// refreshSuggestions rescans the display value for a trigger at the cursor
// and rebuilds the match list. The first match is pre-selected so Tab or
// Enter accepts it immediately.
func (m *Model) refreshSuggestions(value string, pos int) {
	if !m.session.Rescan(value, pos) {
		m.clearSuggestions()
		return
	}

	span := m.session.Span()
	switch span.Trigger {
	case '@':
		matches := mention.FilterCandidates(m.candidates, span.Filter)
		if len(matches) == 0 {
			m.clearSuggestions()
			return
		}
		m.kind = suggestionMember
		m.matches = matches
		m.glyphMatches = nil
	case ':':
		matches := mention.FilterShortcodes(builtinShortcodes, span.Filter)
		if len(matches) == 0 {
			m.clearSuggestions()
			return
		}
		m.kind = suggestionEmoji
		m.glyphMatches = matches
		m.matches = nil
	default:
		m.clearSuggestions()
		return
	}
	m.selected = 0
}

func (m *Model) clearSuggestions() {
	m.kind = suggestionNone
	m.matches = nil
	m.glyphMatches = nil
	m.selected = -1
}

func (m *Model) suggestionCount() int {
	switch m.kind {
	case suggestionMember:
		return len(m.matches)
	case suggestionEmoji:
		return len(m.glyphMatches)
	}
	return 0
}

// applySelected inserts the highlighted match over the active trigger span.
func (m *Model) applySelected() {
	if m.selected < 0 || m.selected >= m.suggestionCount() {
		return
	}
	switch m.kind {
	case suggestionMember:
		m.applyCandidate(m.matches[m.selected])
	case suggestionEmoji:
		m.applyShortcode(m.glyphMatches[m.selected])
	}
}
