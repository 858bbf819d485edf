// Package similarity ranks prior submissions by textual overlap with a new
// one. The metric is a token-set Jaccard coefficient: both texts are
// lower-cased, split on whitespace, and compared as sets, giving
// |intersection| / |union| in [0,1]. The metric is symmetric.
//
// Search is a linear scan over the supplied corpus snapshot. That is fine for
// moderate corpus sizes but there is no index or ANN structure behind it, so
// cost grows with every stored submission.
package similarity

import (
	"sort"
	"strings"
)

// CorpusEntry is the slice of a stored submission the engine needs.
type CorpusEntry struct {
	ID   string
	Text string
}

// Match is one prior submission that cleared the similarity threshold.
type Match struct {
	ID    string
	Score float64
}

// Engine holds the fixed search parameters.
type Engine struct {
	threshold float64
	limit     int
}

// NewEngine returns an engine keeping matches strictly above threshold,
// truncated to at most limit results.
func NewEngine(threshold float64, limit int) *Engine {
	return &Engine{threshold: threshold, limit: limit}
}

// FindSimilar compares text against every corpus entry and returns the
// matches above the threshold, highest similarity first. Entries with the
// submission's own id or empty text are skipped; a submission is never
// similar to itself.
func (e *Engine) FindSimilar(selfID, text string, corpus []CorpusEntry) []Match {
	tokens := tokenize(text)

	var matches []Match
	for _, entry := range corpus {
		if entry.ID == selfID || entry.Text == "" {
			continue
		}
		score := jaccard(tokens, tokenize(entry.Text))
		if score > e.threshold {
			matches = append(matches, Match{ID: entry.ID, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if e.limit > 0 && len(matches) > e.limit {
		matches = matches[:e.limit]
	}
	return matches
}

// Similarity returns the Jaccard coefficient between two texts.
func Similarity(a, b string) float64 {
	return jaccard(tokenize(a), tokenize(b))
}

func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, field := range strings.Fields(strings.ToLower(text)) {
		tokens[field] = struct{}{}
	}
	return tokens
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
