package mention

import "unicode/utf8"

// unit locates one tagged reference in both coordinate spaces. All offsets
// are rune offsets; raw extents cover the tagged form, display extents
// cover the @label token.
type unit struct {
	rawStart  int
	rawEnd    int
	dispStart int
	dispEnd   int
}

// parseUnits finds every tagged reference in raw and computes its rune
// extents in raw and display space in one pass.
func parseUnits(raw string) []unit {
	matches := tagRe.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		return nil
	}

	units := make([]unit, 0, len(matches))
	byteAt, runeAt, shift := 0, 0, 0
	for _, match := range matches {
		runeAt += utf8.RuneCountInString(raw[byteAt:match[0]])
		byteAt = match[0]
		rawStart := runeAt

		runeAt += utf8.RuneCountInString(raw[byteAt:match[1]])
		byteAt = match[1]
		rawEnd := runeAt

		label := raw[match[2]:match[3]]
		dispStart := rawStart + shift
		dispEnd := dispStart + 1 + utf8.RuneCountInString(label)
		shift = dispEnd - rawEnd

		units = append(units, unit{
			rawStart:  rawStart,
			rawEnd:    rawEnd,
			dispStart: dispStart,
			dispEnd:   dispEnd,
		})
	}
	return units
}

// RawToDisplay translates a rune offset in the raw value to the matching
// display offset. References are indivisible: an offset strictly inside a
// tagged form snaps to the display offset just past its token. Results are
// clamped to the display value's bounds.
func RawToDisplay(raw string, rawOffset int) int {
	if rawOffset <= 0 {
		return 0
	}

	shift := 0
	for _, u := range parseUnits(raw) {
		if rawOffset <= u.rawStart {
			return rawOffset + shift
		}
		if rawOffset < u.rawEnd {
			return u.dispEnd
		}
		shift = u.dispEnd - u.rawEnd
	}

	display := rawOffset + shift
	if limit := utf8.RuneCountInString(raw) + shift; display > limit {
		return limit
	}
	return display
}

// DisplayToRaw translates a rune offset in the display value to a raw
// offset. A display offset strictly inside a token maps to the token's raw
// start plus the within-token delta, which lands inside the tagged form.
// Callers get that offset as-is; it is the established placement for a
// cursor partway through a visible label. Results are clamped to the raw
// value's bounds.
func DisplayToRaw(raw string, displayOffset int) int {
	if displayOffset <= 0 {
		return 0
	}

	shift := 0
	for _, u := range parseUnits(raw) {
		if displayOffset <= u.dispStart {
			return displayOffset - shift
		}
		if displayOffset < u.dispEnd {
			return u.rawStart + (displayOffset - u.dispStart)
		}
		shift = u.dispEnd - u.rawEnd
	}

	rawOffset := displayOffset - shift
	if limit := utf8.RuneCountInString(raw); rawOffset > limit {
		return limit
	}
	return rawOffset
}
