package mention

// ToDisplay derives the display value from raw: every tagged reference
// collapses to its @label token, everything else passes through untouched.
// A value with no tagged forms comes back unchanged, so the derivation is
// idempotent on its own output.
func ToDisplay(raw string) string {
	return tagRe.ReplaceAllString(raw, "@$1")
}

// Segment is one run of the display value: either plain text or a mention
// token. Entity is nil for plain runs.
type Segment struct {
	Text   string
	Entity *Entity
}

// Segments splits raw into display runs so renderers can style mention
// tokens without re-parsing. Concatenating every Text yields ToDisplay(raw).
func Segments(raw string) []Segment {
	matches := tagRe.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		if raw == "" {
			return nil
		}
		return []Segment{{Text: raw}}
	}

	segs := make([]Segment, 0, len(matches)*2+1)
	prev := 0
	for _, match := range matches {
		if match[0] > prev {
			segs = append(segs, Segment{Text: raw[prev:match[0]]})
		}
		e := Entity{Label: raw[match[2]:match[3]], ID: raw[match[4]:match[5]]}
		segs = append(segs, Segment{Text: e.Token(), Entity: &e})
		prev = match[1]
	}
	if prev < len(raw) {
		segs = append(segs, Segment{Text: raw[prev:]})
	}
	return segs
}
