// Package mention implements the text model behind a mention-aware message
// composer: a raw value carrying inline entity markup, the display value
// derived from it, offset mapping between the two, edit reconciliation, and
// the trigger scanning that drives autocomplete.
package mention

import (
	"fmt"
	"regexp"
)

// tagRe is the wire grammar for an entity reference inside a raw value.
// Labels may not contain ']' and identifiers may not contain ')'; anything
// that fails the pattern is literal text.
var tagRe = regexp.MustCompile(`@\[([^\]]+)\]\(([^)]+)\)`)

// Entity is an inline reference to a mentionable thing: a human-readable
// label plus the stable identifier it resolves to.
type Entity struct {
	Label string
	ID    string
}

// Tag renders the entity in raw tagged form.
func (e Entity) Tag() string {
	return fmt.Sprintf("@[%s](%s)", e.Label, e.ID)
}

// Token renders the entity as its visible display token.
func (e Entity) Token() string {
	return "@" + e.Label
}

// Candidate is a host-supplied mentionable entity offered in suggestions.
type Candidate struct {
	Entity
	Avatar string
}

// Shortcode is a host-supplied named replacement, e.g. name "fire" with
// glyph 🔥. Glyphs are inserted as plain text and carry no tagged form.
type Shortcode struct {
	Name  string
	Glyph string
}

// Entities returns every well-formed entity reference in raw, in order.
func Entities(raw string) []Entity {
	matches := tagRe.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil
	}

	entities := make([]Entity, 0, len(matches))
	for _, match := range matches {
		entities = append(entities, Entity{Label: match[1], ID: match[2]})
	}
	return entities
}
