package compose

import "testing"

func TestInputCursorPosSingleLine(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("héllo")
	if got := m.inputCursorPos(); got != 5 {
		t.Errorf("expected rune offset 5, got %d", got)
	}
}

func TestInputCursorPosMultiline(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("ab\ncd")
	if got := m.inputCursorPos(); got != 5 {
		t.Errorf("expected offset 5 at end of second line, got %d", got)
	}
}

func TestInputCursorPosEmpty(t *testing.T) {
	m := newTestModel(t)
	if got := m.inputCursorPos(); got != 0 {
		t.Errorf("expected 0 for empty input, got %d", got)
	}
}

func TestSetCursorOffset(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		offset int
		want   int
	}{
		{name: "start", value: "hello world", offset: 0, want: 0},
		{name: "mid line", value: "hello world", offset: 5, want: 5},
		{name: "second line", value: "ab\ncd\nef", offset: 4, want: 4},
		{name: "newline boundary", value: "ab\ncd", offset: 2, want: 2},
		{name: "clamped past end", value: "ab\ncd\nef", offset: 99, want: 8},
		{name: "negative clamps to zero", value: "abc", offset: -3, want: 0},
		{name: "wide runes", value: "ok 🔥 now", offset: 4, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.input.SetValue(tt.value)
			m.setCursorOffset(tt.offset)
			if got := m.inputCursorPos(); got != tt.want {
				t.Errorf("expected cursor at %d, got %d", tt.want, got)
			}
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	if got := normalizeNewlines("a\r\nb\rc\nd"); got != "a\nb\nc\nd" {
		t.Errorf("got %q", got)
	}
}

func TestTruncateLine(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		maxLen int
		want   string
	}{
		{name: "no limit", value: "abcdef", maxLen: 0, want: "abcdef"},
		{name: "fits", value: "abc", maxLen: 5, want: "abc"},
		{name: "truncated with ellipsis", value: "abcdef", maxLen: 4, want: "abc…"},
		{name: "single column", value: "abcdef", maxLen: 1, want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateLine(tt.value, tt.maxLen); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
