package synonym

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultFuzzyThreshold is the minimum similarity score for a fuzzy match.
// 0.8 over the length-damped Levenshtein ratio keeps one-letter typos in
// compound names while rejecting unrelated tokens.
const DefaultFuzzyThreshold = 0.8

// Scorer computes a similarity score in [0,1] between a candidate string
// and a known alias. Implementations must be pure functions so matchers
// stay safe for concurrent use.
type Scorer interface {
	Score(candidate, alias string) float64
}

// LevenshteinScorer is the default similarity heuristic:
//   - identical strings score 1.0
//   - substring containment scores 0.95
//   - otherwise the Levenshtein ratio, damped by the length ratio of the
//     two strings so that short fragments do not spuriously match long
//     aliases
type LevenshteinScorer struct{}

// NewLevenshteinScorer creates the default scorer
func NewLevenshteinScorer() LevenshteinScorer {
	return LevenshteinScorer{}
}

// Score implements Scorer
func (LevenshteinScorer) Score(candidate, alias string) float64 {
	if candidate == alias {
		return 1.0
	}
	if candidate == "" || alias == "" {
		return 0.0
	}
	if strings.Contains(candidate, alias) || strings.Contains(alias, candidate) {
		return 0.95
	}

	longer := len([]rune(candidate))
	shorter := len([]rune(alias))
	if shorter > longer {
		longer, shorter = shorter, longer
	}

	distance := fuzzy.LevenshteinDistance(candidate, alias)
	similarity := 1.0 - float64(distance)/float64(longer)
	if similarity < 0 {
		similarity = 0
	}

	lengthPenalty := float64(shorter) / float64(longer)
	return similarity * lengthPenalty
}

var _ Scorer = LevenshteinScorer{}
