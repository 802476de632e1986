package compose

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"

	"github.com/coppermind/quill/mention"
)

var (
	textColor   = lipgloss.Color("252")
	blurColor   = lipgloss.Color("245")
	caretColor  = lipgloss.Color("205")
	inputBg     = lipgloss.Color("236")
	metaColor   = lipgloss.Color("243")
	statusColor = lipgloss.Color("108")
	selfColor   = lipgloss.Color("212")
	fenceColor  = lipgloss.Color("240")
)

var memberPalette = []lipgloss.Color{
	lipgloss.Color("111"),
	lipgloss.Color("157"),
	lipgloss.Color("216"),
	lipgloss.Color("36"),
	lipgloss.Color("183"),
	lipgloss.Color("230"),
}

// buildColorMap assigns palette colors by roster position, so the most
// recently mentioned members keep stable, distinct colors. Members beyond
// the palette wrap around.
func buildColorMap(candidates []mention.Candidate) map[string]lipgloss.Color {
	colorMap := make(map[string]lipgloss.Color, len(candidates))
	for i, c := range candidates {
		colorMap[c.ID] = memberPalette[i%len(memberPalette)]
	}
	return colorMap
}

// colorForMember resolves a member's color, hashing unknown identifiers into
// the palette so ad-hoc mentions still render consistently.
func colorForMember(id string, colorMap map[string]lipgloss.Color) lipgloss.Color {
	if color, ok := colorMap[id]; ok {
		return color
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return memberPalette[int(h.Sum32())%len(memberPalette)]
}
