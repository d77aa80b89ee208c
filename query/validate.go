package query

import (
	"strings"
)

// Validation is advisory feedback on a raw query before analysis. It
// never blocks the pipeline; callers may surface the suggestions or just
// run Analyze anyway.
type Validation struct {
	IsValid     bool     `json:"is_valid"`
	Issues      []string `json:"issues,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Confidence  float64  `json:"confidence"`
}

var meaningfulWords = []string{
	"drug", "compound", "effect", "lifespan", "longevity",
	"mouse", "rat", "compare", "best", "top",
}

var directiveWords = []string{
	"show", "tell", "find", "compare", "what", "which", "how",
}

// ValidateQuery checks a raw query for obvious problems: too short, no
// domain vocabulary, or unclear phrasing
func ValidateQuery(raw string) Validation {
	v := Validation{IsValid: true, Confidence: 1.0}

	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < 3 {
		v.IsValid = false
		v.Issues = append(v.Issues, "query is too short")
		v.Suggestions = append(v.Suggestions, "describe what you want to know in a full phrase")
		return v
	}

	folded := strings.ToLower(trimmed)

	if !containsAny(folded, meaningfulWords...) {
		v.Confidence -= 0.3
		v.Suggestions = append(v.Suggestions, "include a compound name or research keyword")
	}

	if !strings.Contains(folded, "?") && !containsAny(folded, directiveWords...) {
		v.Suggestions = append(v.Suggestions, "consider phrasing the query as a question")
	}

	return v
}
