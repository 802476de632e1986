package mention

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Reconcile replays a plain-text edit onto the raw value. oldDisplay must
// be the display value previously derived from oldRaw; newDisplay is what
// the input widget holds after the edit. The edited region is the common
// prefix/suffix remainder, translated to raw offsets against oldRaw and
// spliced in. References whose tokens the edit never reaches keep their
// tagged form byte for byte; an edit boundary landing inside a token
// dissolves that reference into plain text.
func Reconcile(oldRaw, oldDisplay, newDisplay string) string {
	if newDisplay == oldDisplay {
		return oldRaw
	}

	dmp := diffmatchpatch.New()
	prefix := dmp.DiffCommonPrefix(oldDisplay, newDisplay)

	oldRunes := []rune(oldDisplay)
	newRunes := []rune(newDisplay)
	// Suffix search runs on the remainders so it cannot overlap the prefix.
	suffix := dmp.DiffCommonSuffix(string(oldRunes[prefix:]), string(newRunes[prefix:]))

	oldEnd := len(oldRunes) - suffix
	newEnd := len(newRunes) - suffix
	rawStart := DisplayToRaw(oldRaw, prefix)
	rawEnd := DisplayToRaw(oldRaw, oldEnd)

	rawRunes := []rune(oldRaw)
	updated := append([]rune{}, rawRunes[:rawStart]...)
	updated = append(updated, newRunes[prefix:newEnd]...)
	updated = append(updated, rawRunes[rawEnd:]...)
	return string(updated)
}

// InsertEntity consumes an active trigger span, replacing it in the raw
// value with the entity's tagged form plus a trailing space. The trailing
// space prevents an immediate re-trigger. Returns the new raw value and
// the display offset for the cursor, just past the token and space.
func InsertEntity(raw string, span TriggerSpan, e Entity) (string, int) {
	updated := replaceSpan(raw, span, e.Tag()+" ")
	return updated, span.Start + utf8.RuneCountInString(e.Label) + 2
}

// InsertShortcode consumes an active trigger span, replacing it in the raw
// value with the shortcode's glyph sequence plus a trailing space. Returns
// the new raw value and the display offset for the cursor.
func InsertShortcode(raw string, span TriggerSpan, s Shortcode) (string, int) {
	updated := replaceSpan(raw, span, s.Glyph+" ")
	return updated, span.Start + utf8.RuneCountInString(s.Glyph) + 1
}

// replaceSpan splices replacement over the span's extent in the raw value.
// The span's display range runs from the trigger character through the
// cursor position that produced it.
func replaceSpan(raw string, span TriggerSpan, replacement string) string {
	rawStart := DisplayToRaw(raw, span.Start)
	rawEnd := DisplayToRaw(raw, span.End())

	value := []rune(raw)
	updated := append([]rune{}, value[:rawStart]...)
	updated = append(updated, []rune(replacement)...)
	updated = append(updated, value[rawEnd:]...)
	return string(updated)
}
