package mention

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	// MaxCandidateResults caps a filtered entity suggestion list.
	MaxCandidateResults = 6
	// MaxShortcodeResults caps a filtered shortcode suggestion list.
	MaxShortcodeResults = 8
)

// FilterCandidates returns the candidates whose label or identifier
// contains filter case-insensitively, closest matches first, capped at
// MaxCandidateResults. An empty filter returns the head of the list in the
// host's own order.
func FilterCandidates(list []Candidate, filter string) []Candidate {
	matches := make([]Candidate, 0, MaxCandidateResults)
	if filter == "" {
		for _, c := range list {
			if len(matches) == MaxCandidateResults {
				break
			}
			matches = append(matches, c)
		}
		return matches
	}

	needle := strings.ToLower(filter)
	type ranked struct {
		candidate Candidate
		rank      int
	}
	hits := make([]ranked, 0, len(list))
	for _, c := range list {
		if !strings.Contains(strings.ToLower(c.Label), needle) &&
			!strings.Contains(strings.ToLower(c.ID), needle) {
			continue
		}
		hits = append(hits, ranked{candidate: c, rank: candidateRank(filter, c)})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })

	for _, hit := range hits {
		if len(matches) == MaxCandidateResults {
			break
		}
		matches = append(matches, hit.candidate)
	}
	return matches
}

// candidateRank scores how closely the filter resembles the candidate;
// lower ranks sort first. Substring membership is already established, so
// at least one field always yields a non-negative rank.
func candidateRank(filter string, c Candidate) int {
	rank := fuzzy.RankMatchFold(filter, c.Label)
	if idRank := fuzzy.RankMatchFold(filter, c.ID); rank < 0 || (idRank >= 0 && idRank < rank) {
		rank = idRank
	}
	return rank
}

// FilterShortcodes returns the shortcodes whose name contains filter
// case-insensitively, closest matches first, capped at
// MaxShortcodeResults. An empty filter returns the head of the list in the
// host's own order.
func FilterShortcodes(list []Shortcode, filter string) []Shortcode {
	matches := make([]Shortcode, 0, MaxShortcodeResults)
	if filter == "" {
		for _, s := range list {
			if len(matches) == MaxShortcodeResults {
				break
			}
			matches = append(matches, s)
		}
		return matches
	}

	needle := strings.ToLower(filter)
	type ranked struct {
		shortcode Shortcode
		rank      int
	}
	hits := make([]ranked, 0, len(list))
	for _, s := range list {
		if !strings.Contains(strings.ToLower(s.Name), needle) {
			continue
		}
		hits = append(hits, ranked{shortcode: s, rank: fuzzy.RankMatchFold(filter, s.Name)})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })

	for _, hit := range hits {
		if len(matches) == MaxShortcodeResults {
			break
		}
		matches = append(matches, hit.shortcode)
	}
	return matches
}
