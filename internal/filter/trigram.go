// Package filter provides trigram-based fuzzy matching for page filtering.
package filter

import (
	"sort"
	"strings"
)

// Match represents a filter match with its index and score.
type Match struct {
	Index int
	Score float64
}

// Matcher performs trigram-based matching with multi-word support.
type Matcher struct {
	texts    []string
	trigrams []map[string]struct{}
}

// NewMatcher creates a matcher over the given texts.
func NewMatcher(texts []string) *Matcher {
	m := &Matcher{
		texts:    make([]string, len(texts)),
		trigrams: make([]map[string]struct{}, len(texts)),
	}
	for i, text := range texts {
		normalized := strings.ToLower(text)
		m.texts[i] = normalized
		m.trigrams[i] = generateTrigrams(normalized)
	}
	return m
}

// Search finds texts matching the query. The query is split into words and
// every word must match (AND logic). Matches come back sorted by score, best
// first; an empty query matches everything in original order.
func (m *Matcher) Search(query string) []Match {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		matches := make([]Match, len(m.texts))
		for i := range m.texts {
			matches[i] = Match{Index: i}
		}
		return matches
	}

	wordTrigrams := make([]map[string]struct{}, len(words))
	for i, word := range words {
		wordTrigrams[i] = generateTrigrams(word)
	}

	var matches []Match
	for i := range m.texts {
		score := m.score(i, words, wordTrigrams)
		if score > 0 {
			matches = append(matches, Match{Index: i, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// score calculates how well a text matches the query words.
// All words must match for a non-zero score.
func (m *Matcher) score(idx int, words []string, wordTrigrams []map[string]struct{}) float64 {
	text := m.texts[idx]
	total := 0.0

	for i, word := range words {
		// Short words (1-2 chars) use substring match; they have no useful
		// trigrams.
		if len(word) <= 2 {
			if !strings.Contains(text, word) {
				return 0
			}
			total += 1.0
			continue
		}

		// Coverage (intersection/query size) instead of Jaccard: Jaccard
		// penalizes short queries against long texts.
		coverage := trigramCoverage(wordTrigrams[i], m.trigrams[idx])
		if coverage < 0.4 {
			return 0
		}
		similarity := coverage
		if strings.Contains(text, word) {
			similarity += 0.5
		}
		total += similarity
	}

	return total / float64(len(words))
}

// generateTrigrams creates the set of trigrams for a string, padded with
// spaces for prefix/suffix matching.
func generateTrigrams(s string) map[string]struct{} {
	if s == "" {
		return nil
	}

	tris := make(map[string]struct{})
	runes := []rune("  " + s + "  ")
	for i := 0; i <= len(runes)-3; i++ {
		tri := string(runes[i : i+3])
		if strings.TrimSpace(tri) != "" {
			tris[tri] = struct{}{}
		}
	}
	return tris
}

// trigramCoverage calculates what fraction of query trigrams appear in the text.
func trigramCoverage(query, text map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}
	intersection := 0
	for tri := range query {
		if _, ok := text[tri]; ok {
			intersection++
		}
	}
	return float64(intersection) / float64(len(query))
}
