package mention

import (
	"unicode"
	"unicode/utf8"
)

// TriggerSpan is an active autocomplete trigger: the display offset of the
// trigger character, the trigger itself, and the filter text typed after
// it. Spans are transient; every input event produces a fresh one.
type TriggerSpan struct {
	Start   int
	Trigger rune
	Filter  string
}

// End returns the display offset one past the filter text.
func (s TriggerSpan) End() int {
	return s.Start + 1 + utf8.RuneCountInString(s.Filter)
}

// Scan inspects the display text immediately before cursor for an active
// trigger. Shortcode triggers take priority over mention triggers and at
// most one trigger is active at a time. A shortcode needs at least one
// filter rune; a mention filter may be empty.
func Scan(display string, cursor int) (TriggerSpan, bool) {
	runes := []rune(display)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	if span, ok := scanTrigger(runes, cursor, ':'); ok && span.Filter != "" {
		return span, true
	}
	if span, ok := scanTrigger(runes, cursor, '@'); ok {
		return span, true
	}
	return TriggerSpan{}, false
}

// scanTrigger validates the last occurrence of trigger before cursor: the
// rune preceding it must be whitespace or the start of text, and the
// filter between it and the cursor must contain no whitespace. Only the
// last occurrence is considered; earlier ones never reactivate.
func scanTrigger(runes []rune, cursor int, trigger rune) (TriggerSpan, bool) {
	last := -1
	for i := cursor - 1; i >= 0; i-- {
		if runes[i] == trigger {
			last = i
			break
		}
	}
	if last == -1 {
		return TriggerSpan{}, false
	}
	if last > 0 && !unicode.IsSpace(runes[last-1]) {
		return TriggerSpan{}, false
	}

	filter := runes[last+1 : cursor]
	for _, r := range filter {
		if unicode.IsSpace(r) {
			return TriggerSpan{}, false
		}
	}
	return TriggerSpan{Start: last, Trigger: trigger, Filter: string(filter)}, true
}
