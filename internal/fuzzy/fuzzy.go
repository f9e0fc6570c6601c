// Package fuzzy provides edit-distance matching for CLI error suggestions.
// Used by dispatch/errors.go to propose the closest option or subcommand name
// when a token fails to resolve.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher finds candidate names within a maximum edit distance of an input.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given edit distance budget.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't suggest for very short inputs
	}
}

// Match is a candidate within the distance budget.
type Match struct {
	Value    string
	Distance int
}

// FindBest returns the closest candidate, or "" when none is close enough.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns all candidates within the budget, closest first.
// Exact matches are excluded: an exact match would have resolved normally.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	input = strings.ToLower(input)

	var matches []Match
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		if d := m.distance(input, lower); d <= m.maxDistance {
			matches = append(matches, Match{Value: candidate, Distance: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		// Same distance: prefer the longer common prefix with the input.
		pi := commonPrefixLen(input, strings.ToLower(matches[i].Value))
		pj := commonPrefixLen(input, strings.ToLower(matches[j].Value))
		if pi != pj {
			return pi > pj
		}
		return matches[i].Value < matches[j].Value
	})

	return matches
}

// distance computes the Levenshtein distance between a and b using two rows,
// giving up early once the distance is known to exceed the budget.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i

		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, min(prev[j]+1, prev[j-1]+cost))
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}

		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}

	return prev[len(a)]
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// FindBest is a convenience wrapper over Matcher for one-shot lookups.
func FindBest(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, candidates)
}
