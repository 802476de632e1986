// Package codeblock decides whether pasted text looks like source code and
// wraps it in a fenced block when it does.
package codeblock

import (
	"regexp"
	"strings"
)

const (
	// minWrapLines is the floor below which pasted text is never wrapped.
	minWrapLines = 3
	// genericMinLines is the floor for the generic looks-like-code check.
	genericMinLines = 5
)

var genericLineRes = []*regexp.Regexp{
	regexp.MustCompile(`[{}\[\]();]\s*$`),
	regexp.MustCompile(`(=>|->|::|==|!=|&&|\|\|)`),
	regexp.MustCompile(`^(\t+|\s{4,})\S`),
	regexp.MustCompile(`^\s*(if|else|for|while|return|function|def|fn|func|class|import|const|let|var)\b`),
}

// Wrap applies the paste heuristic: text spanning at least three lines that
// matches a known language is fenced with that language's tag; otherwise
// text spanning at least five lines where 30% or more look like code is
// fenced with the tag "text". Anything else, including text that already
// opens with a fence, comes back unchanged. The second return reports
// whether wrapping happened.
func Wrap(text string) (string, bool) {
	if strings.HasPrefix(strings.TrimSpace(text), "```") {
		return text, false
	}

	body := strings.TrimRight(text, "\n")
	lines := strings.Split(body, "\n")
	if len(lines) < minWrapLines {
		return text, false
	}

	if lang := Detect(body); lang != "" {
		return fence(body, lang), true
	}
	if len(lines) >= genericMinLines && looksGeneric(lines) {
		return fence(body, "text"), true
	}
	return text, false
}

// looksGeneric reports whether at least 30% of the lines match a
// bracket/arrow/indented-keyword pattern.
func looksGeneric(lines []string) bool {
	hits := 0
	for _, line := range lines {
		for _, re := range genericLineRes {
			if re.MatchString(line) {
				hits++
				break
			}
		}
	}
	return hits*10 >= len(lines)*3
}

func fence(body, lang string) string {
	return "```" + lang + "\n" + body + "\n```"
}
