package compose

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/coppermind/quill/mention"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(Options{Username: "mira"})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	m.candidates = []mention.Candidate{
		{Entity: mention.Entity{Label: "Bob", ID: "0xAB"}},
		{Entity: mention.Entity{Label: "Ann", ID: "0x01"}},
		{Entity: mention.Entity{Label: "Bobby", ID: "0x02"}},
	}
	m.colorMap = buildColorMap(m.candidates)
	return m
}

// typeInput simulates the textarea settling on a value with the cursor at
// the end, then runs the reconcile/rescan pass an edit would run.
func typeInput(m *Model, value string) {
	m.input.SetValue(value)
	m.syncInput()
}

func TestMentionTriggerOpensSuggestions(t *testing.T) {
	m := newTestModel(t)
	typeInput(m, "hi @b")

	if !m.session.Active() {
		t.Fatalf("expected active trigger session")
	}
	if m.kind != suggestionMember {
		t.Fatalf("expected member suggestions, got kind %d", m.kind)
	}
	if len(m.matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(m.matches))
	}
	if m.matches[0].Label != "Bob" || m.matches[1].Label != "Bobby" {
		t.Errorf("expected Bob then Bobby, got %s then %s", m.matches[0].Label, m.matches[1].Label)
	}
	if m.selected != 0 {
		t.Errorf("expected first match pre-selected, got %d", m.selected)
	}
}

func TestApplyCandidateInsertsToken(t *testing.T) {
	m := newTestModel(t)
	typeInput(m, "hi @b")
	m.applySelected()

	if got := m.input.Value(); got != "hi @Bob " {
		t.Errorf("display: expected %q, got %q", "hi @Bob ", got)
	}
	if m.raw != "hi @[Bob](0xAB) " {
		t.Errorf("raw: expected %q, got %q", "hi @[Bob](0xAB) ", m.raw)
	}
	if got := m.inputCursorPos(); got != 8 {
		t.Errorf("cursor: expected 8, got %d", got)
	}
	if m.session.Active() {
		t.Errorf("expected session consumed after insertion")
	}
	if m.kind != suggestionNone {
		t.Errorf("expected suggestions cleared, got kind %d", m.kind)
	}
}

func TestApplyShortcodeInsertsGlyph(t *testing.T) {
	m := newTestModel(t)
	typeInput(m, "ok :fir")

	if m.kind != suggestionEmoji {
		t.Fatalf("expected emoji suggestions, got kind %d", m.kind)
	}
	if len(m.glyphMatches) == 0 || m.glyphMatches[0].Name != "fire" {
		t.Fatalf("expected fire first, got %v", m.glyphMatches)
	}

	m.applySelected()
	if got := m.input.Value(); got != "ok 🔥 " {
		t.Errorf("display: expected %q, got %q", "ok 🔥 ", got)
	}
	if m.raw != "ok 🔥 " {
		t.Errorf("raw: expected %q, got %q", "ok 🔥 ", m.raw)
	}
	if got := m.inputCursorPos(); got != 5 {
		t.Errorf("cursor: expected 5, got %d", got)
	}
}

func TestDeleteInsideTokenDegradesTag(t *testing.T) {
	m := newTestModel(t)
	typeInput(m, "hi @b")
	m.applySelected()

	// Deleting the final rune of the token clips the tagged form; the raw
	// remnant becomes the visible value.
	typeInput(m, "hi @Bo ")

	if m.raw != "hi @[B " {
		t.Errorf("raw: expected %q, got %q", "hi @[B ", m.raw)
	}
	if got := m.input.Value(); got != "hi @[B " {
		t.Errorf("display: expected %q, got %q", "hi @[B ", got)
	}
	if m.session.Active() {
		t.Errorf("expected no active trigger after degrade")
	}
}

func TestPasteWrapsDetectedCode(t *testing.T) {
	m := newTestModel(t)
	snippet := "import { api } from \"./api\";\n" +
		"\n" +
		"function load() {\n" +
		"  return api.get(\"/users\");\n" +
		"}\n" +
		"load();"
	m.handlePaste(snippet)

	want := "```javascript\n" + snippet + "\n```"
	if got := m.input.Value(); got != want {
		t.Errorf("display: expected %q, got %q", want, got)
	}
	if m.raw != want {
		t.Errorf("raw: expected %q, got %q", want, m.raw)
	}
}

func TestPasteShortTextInsertsVerbatim(t *testing.T) {
	m := newTestModel(t)
	m.handlePaste("just a line")
	if got := m.input.Value(); got != "just a line" {
		t.Errorf("expected %q, got %q", "just a line", got)
	}
}

func TestSubmitAppendsToTranscript(t *testing.T) {
	m := newTestModel(t)
	typeInput(m, "hi @b")
	m.applySelected()
	m.handleSubmit()

	if len(m.transcript) != 1 {
		t.Fatalf("expected 1 message, got %d", len(m.transcript))
	}
	msg := m.transcript[0]
	if msg.Raw != "hi @[Bob](0xAB) " {
		t.Errorf("raw: expected %q, got %q", "hi @[Bob](0xAB) ", msg.Raw)
	}
	if msg.Author != "mira" {
		t.Errorf("author: expected mira, got %s", msg.Author)
	}
	if msg.ID == "" {
		t.Errorf("expected message ID assigned")
	}
	if m.input.Value() != "" || m.raw != "" {
		t.Errorf("expected input cleared, got value %q raw %q", m.input.Value(), m.raw)
	}
}

func TestSubmitBlankDoesNothing(t *testing.T) {
	m := newTestModel(t)
	typeInput(m, "   ")
	m.handleSubmit()
	if len(m.transcript) != 0 {
		t.Fatalf("expected empty transcript, got %d messages", len(m.transcript))
	}
}

func TestSuggestionKeysNavigateAndWrap(t *testing.T) {
	m := newTestModel(t)
	typeInput(m, "@")

	if m.suggestionCount() != 3 {
		t.Fatalf("expected all 3 candidates on empty filter, got %d", m.suggestionCount())
	}

	m.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 1 {
		t.Errorf("after down: expected 1, got %d", m.selected)
	}
	m.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	m.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 0 {
		t.Errorf("after wrap down: expected 0, got %d", m.selected)
	}
	m.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	if m.selected != 2 {
		t.Errorf("after wrap up: expected 2, got %d", m.selected)
	}
}

func TestEscDismissesSuggestions(t *testing.T) {
	m := newTestModel(t)
	typeInput(m, "note for @a")

	if !m.session.Active() {
		t.Fatalf("expected active session")
	}
	m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.session.Active() {
		t.Errorf("expected session dismissed")
	}
	if m.kind != suggestionNone {
		t.Errorf("expected suggestions cleared")
	}
	if got := m.input.Value(); got != "note for @a" {
		t.Errorf("expected text untouched, got %q", got)
	}
}

func TestEnterAcceptsSuggestionBeforeSubmitting(t *testing.T) {
	m := newTestModel(t)
	typeInput(m, "hey @an")

	m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.transcript) != 0 {
		t.Fatalf("first enter should accept the suggestion, not post")
	}
	if got := m.input.Value(); got != "hey @Ann " {
		t.Fatalf("expected %q after accept, got %q", "hey @Ann ", got)
	}

	m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.transcript) != 1 {
		t.Fatalf("second enter should post, got %d messages", len(m.transcript))
	}
	if m.transcript[0].Raw != "hey @[Ann](0x01) " {
		t.Errorf("raw: got %q", m.transcript[0].Raw)
	}
}

func TestCtrlCClearsThenQuits(t *testing.T) {
	m := newTestModel(t)
	typeInput(m, "draft")

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd != nil {
		t.Fatalf("expected first ctrl+c to clear, not quit")
	}
	if m.input.Value() != "" {
		t.Errorf("expected input cleared, got %q", m.input.Value())
	}

	_, cmd = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected quit message")
	}
}

func TestRosterReloadRefreshesStatus(t *testing.T) {
	m := newTestModel(t)
	m.Update(rosterReloadedMsg{count: 4})
	if m.status == "" {
		t.Fatalf("expected reload status")
	}
}

func TestStatusLineShowsRawPreview(t *testing.T) {
	m := newTestModel(t)
	m.width, m.height = 80, 24

	if line := m.statusLine(); !strings.Contains(line, "ctrl+y copy raw") {
		t.Errorf("expected key hints while empty, got %q", line)
	}

	typeInput(m, "hi @b")
	m.applySelected()

	if line := m.statusLine(); !strings.Contains(line, "raw: hi @[Bob](0xAB)") {
		t.Errorf("expected raw preview in status line, got %q", line)
	}
}
