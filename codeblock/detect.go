package codeblock

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/lexers"
)

// language couples a fence tag with the line patterns that vote for it.
// Table order breaks score ties, so broader languages sit first.
type language struct {
	name     string
	patterns []*regexp.Regexp
}

var languages = []language{
	{
		name: "javascript",
		patterns: compile(
			`^\s*(import|export)\s`,
			`\bfunction\b`,
			`\b(const|let|var)\s+\w+\s*=`,
			`=>`,
			`console\.\w+\(`,
		),
	},
	{
		name: "typescript",
		patterns: compile(
			`^\s*(interface|type)\s+\w+\s*[={]`,
			`:\s*(string|number|boolean|any|void)\b`,
			`^\s*(public|private|readonly)\s+\w+`,
		),
	},
	{
		name: "python",
		patterns: compile(
			`^\s*def\s+\w+\(`,
			`^\s*import\s+\w+`,
			`^\s*from\s+\w+[\w.]*\s+import\b`,
			`^\s*class\s+\w+.*:\s*$`,
			`^\s*(if|elif|for|while)\b.*:\s*$`,
			`\bprint\(`,
		),
	},
	{
		name: "go",
		patterns: compile(
			`^\s*package\s+\w+$`,
			`^\s*func\s+(\(\w+ \*?\w+\) )?\w+\(`,
			`:=`,
			`^\s*import\s+\(`,
			`\bfmt\.\w+\(`,
		),
	},
	{
		name: "rust",
		patterns: compile(
			`^\s*(pub\s+)?fn\s+\w+`,
			`\blet\s+(mut\s+)?\w+`,
			`^\s*use\s+\w+(::\w+)+`,
			`\bprintln!\(`,
		),
	},
	{
		name: "java",
		patterns: compile(
			`^\s*(public|private|protected)\s+(static\s+)?\w+`,
			`\bSystem\.out\.\w+\(`,
			`^\s*import\s+[\w.]+;`,
			`^\s*@\w+\s*$`,
		),
	},
	{
		name: "c",
		patterns: compile(
			`^\s*#include\s*[<"]`,
			`\bint\s+main\s*\(`,
			`\b(void|int|char|float|double)\s+\w+\s*\(`,
			`\bprintf\(`,
		),
	},
	{
		name: "sql",
		patterns: compile(
			`(?i)^\s*(select|insert|update|delete|create|alter|drop)\b`,
			`(?i)\b(from|where|join|group by|order by)\b`,
		),
	},
	{
		name: "html",
		patterns: compile(
			`^\s*</?\w+[^>]*>`,
			`</(div|span|p|a|ul|li|html|body)>`,
		),
	},
	{
		name: "css",
		patterns: compile(
			`^\s*[.#]?[\w-]+(\s*[,>]\s*[.#]?[\w-]+)*\s*\{`,
			`^\s*[\w-]+\s*:\s*[^;{]+;\s*$`,
		),
	},
	{
		name: "shell",
		patterns: compile(
			`^#!/bin/(ba|z)?sh`,
			`^\s*(if|then|elif|fi|for|do|done|case|esac)\b`,
			`\$\{?\w+`,
			`^\s*(echo|cd|export|source)\s`,
		),
	},
	{
		name: "json",
		patterns: compile(
			`^\s*"[^"]+"\s*:`,
			`^\s*[\{\}\[\],]+\s*$`,
		),
	},
}

func compile(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		res = append(res, regexp.MustCompile(pattern))
	}
	return res
}

// Detect scores each known language's patterns against the lines of text
// and returns the winner's fence tag, or "" when nothing reaches the
// threshold: a language needs matches on at least two lines and on 30% or
// more of the non-blank lines. Tags are canonicalized through the
// highlighter's lexer registry so a fence always names a real lexer when
// one exists.
func Detect(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	nonBlank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonBlank++
		}
	}
	if nonBlank == 0 {
		return ""
	}

	best := ""
	bestHits := 0
	for _, lang := range languages {
		hits := 0
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			for _, re := range lang.patterns {
				if re.MatchString(line) {
					hits++
					break
				}
			}
		}
		if hits < 2 || hits*10 < nonBlank*3 {
			continue
		}
		if hits > bestHits {
			best = lang.name
			bestHits = hits
		}
	}
	if best == "" {
		return ""
	}
	return canonicalTag(best)
}

// canonicalTag maps a detected name onto the lexer registry's spelling,
// e.g. shell becomes bash. Unknown names pass through.
func canonicalTag(name string) string {
	lexer := lexers.Get(name)
	if lexer == nil {
		return name
	}
	return strings.ToLower(lexer.Config().Name)
}
