package compose

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/coppermind/quill/internal/roster"
	"github.com/coppermind/quill/mention"
	"github.com/coppermind/quill/redact"
)

// Options configure the composer.
type Options struct {
	Store      *roster.Store
	RosterPath string // optional roster file reloaded on change
	Username   string
	Logger     *redact.Logger
}

// rosterReloadedMsg arrives from the file watcher after a roster import.
type rosterReloadedMsg struct {
	count int
}

// Run starts the composer UI and blocks until it exits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	fmt.Printf("\033]0;quill · @%s\007", model.self)

	program := tea.NewProgram(model, tea.WithMouseCellMotion())

	if opts.RosterPath != "" && opts.Store != nil {
		watcher, err := roster.WatchFile(opts.RosterPath, opts.Store, model.logf, func(count int) {
			program.Send(rosterReloadedMsg{count: count})
		})
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	_, err = program.Run()
	return err
}

// Model implements the composer UI. The textarea holds the display value;
// raw carries the tagged form it mirrors, reconciled after every edit.
type Model struct {
	store  *roster.Store
	self   string
	logger *redact.Logger

	viewport viewport.Model
	input    textarea.Model
	zones    *zone.Manager

	raw         string
	lastDisplay string
	lastCursor  int
	session     mention.Session

	candidates []mention.Candidate
	colorMap   map[string]lipgloss.Color

	kind         suggestionKind
	matches      []mention.Candidate
	glyphMatches []mention.Shortcode
	selected     int

	transcript []Message
	status     string

	width         int
	height        int
	initialScroll bool
}

// NewModel creates a composer with the roster preloaded.
func NewModel(opts Options) (*Model, error) {
	if opts.Username == "" {
		opts.Username = "me"
	}

	var candidates []mention.Candidate
	if opts.Store != nil {
		loaded, err := opts.Store.Candidates()
		if err != nil {
			return nil, err
		}
		candidates = loaded
	}

	model := &Model{
		store:         opts.Store,
		self:          opts.Username,
		logger:        opts.Logger,
		viewport:      viewport.New(0, 0),
		input:         newComposerInput(),
		zones:         zone.New(),
		candidates:    candidates,
		colorMap:      buildColorMap(candidates),
		selected:      -1,
		initialScroll: true,
	}
	return model, nil
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// reloadRoster refreshes the candidate cache from the store.
func (m *Model) reloadRoster() {
	if m.store == nil {
		return
	}
	candidates, err := m.store.Candidates()
	if err != nil {
		m.status = err.Error()
		return
	}
	m.candidates = candidates
	m.colorMap = buildColorMap(candidates)
}

func (m *Model) logf(format string, args ...any) {
	if m.logger == nil {
		return
	}
	m.logger.Debug(fmt.Sprintf(format, args...))
}
