package compose

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/coppermind/quill/mention"
)

// Message is one posted entry in the transcript. Raw keeps the tagged form;
// rendering derives the display on demand.
type Message struct {
	ID     string
	Author string
	Raw    string
	At     time.Time
}

func (m *Model) refreshViewport(gotoBottom bool) {
	m.viewport.SetContent(m.renderTranscript())
	if gotoBottom {
		m.viewport.GotoBottom()
	}
}

func (m *Model) renderTranscript() string {
	if len(m.transcript) == 0 {
		return lipgloss.NewStyle().Foreground(metaColor).Render(
			"no messages yet · @ mentions someone, : picks an emoji, enter posts")
	}
	blocks := make([]string, 0, len(m.transcript))
	for _, msg := range m.transcript {
		blocks = append(blocks, m.renderMessage(msg))
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) renderMessage(msg Message) string {
	authorColor := selfColor
	if msg.Author != m.self {
		authorColor = colorForMember(msg.Author, m.colorMap)
	}
	author := lipgloss.NewStyle().Foreground(authorColor).Bold(true).Render("@" + msg.Author)
	ts := lipgloss.NewStyle().Foreground(metaColor).Render(msg.At.Format("15:04"))
	header := m.zones.Mark("message-"+msg.ID, author+" "+ts)

	body := m.renderBody(msg.Raw)
	indented := make([]string, 0, strings.Count(body, "\n")+1)
	for _, line := range strings.Split(body, "\n") {
		indented = append(indented, "  "+line)
	}
	return header + "\n" + strings.Join(indented, "\n")
}

// renderBody walks the raw message line by line. Fenced blocks are syntax
// highlighted; everything else gets mention tokens styled per member.
func (m *Model) renderBody(raw string) string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	fenceStyle := lipgloss.NewStyle().Foreground(fenceColor)

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		fence, lang, ok := parseFence(line)
		if ok {
			if end := findClosingFence(lines, i+1, fence); end != -1 {
				out = append(out, fenceStyle.Render(line))
				code := strings.Join(lines[i+1:end], "\n")
				out = append(out, strings.Split(highlightCode(code, lang), "\n")...)
				out = append(out, fenceStyle.Render(lines[end]))
				i = end
				continue
			}
		}
		out = append(out, m.renderMentionLine(line))
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderMentionLine(line string) string {
	segs := mention.Segments(line)
	if len(segs) == 1 && segs[0].Entity == nil {
		return line
	}
	var b strings.Builder
	for _, seg := range segs {
		if seg.Entity == nil {
			b.WriteString(seg.Text)
			continue
		}
		style := lipgloss.NewStyle().
			Foreground(colorForMember(seg.Entity.ID, m.colorMap)).
			Bold(true)
		b.WriteString(style.Render(seg.Text))
	}
	return b.String()
}
